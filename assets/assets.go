// Package assets finds the resources the renderer needs by name.
package assets

import (
	"errors"
	"fmt"

	"github.com/gobuffalo/packr"

	"github.com/devblok/triangle/utility/kar"
)

// Shader sources bundled with the binary
const (
	VertexShader   = "triangle_150.glslv"
	FragmentShader = "triangle_150.glslf"
)

// ErrNotFound is returned when no asset exists under the requested name
var ErrNotFound = errors.New("asset not found")

// Loader describes a resource loader mechanism.
type Loader interface {

	// Load tries to find and load the resource
	// associated with the provided name.
	Load(name string) ([]byte, error)
}

// NewBoxLoader returns a Loader for the shaders compiled into the binary.
func NewBoxLoader() *BoxLoader {
	return &BoxLoader{
		box: packr.NewBox("../shaders"),
	}
}

// BoxLoader loads assets bundled at compile time.
type BoxLoader struct {
	box packr.Box
}

// Load implements interface
func (l *BoxLoader) Load(name string) ([]byte, error) {
	if !l.box.Has(name) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return l.box.Find(name)
}

// List returns the names of all bundled assets.
func (l *BoxLoader) List() []string {
	return l.box.List()
}

// NewArchiveLoader memory maps the kar archive at path and loads assets from it.
func NewArchiveLoader(path string) (*ArchiveLoader, error) {
	ar, err := kar.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("kar.OpenFile(%s): %s", path, err)
	}
	return &ArchiveLoader{archive: ar}, nil
}

// ArchiveLoader loads assets from a kar archive.
type ArchiveLoader struct {
	archive *kar.Archive
}

// Load implements interface
func (l *ArchiveLoader) Load(name string) ([]byte, error) {
	data, err := l.archive.ReadAll(name)
	if errors.Is(err, kar.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, err
}

// Release closes the archive.
func (l *ArchiveLoader) Release() {
	l.archive.Close()
}
