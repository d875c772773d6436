// Package renderer implements the OpenGL renderer of the demo.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/triangle/assets"
	"github.com/devblok/triangle/core"
	"github.com/devblok/triangle/model"
)

// ErrNotInitialised is returned when drawing before Initialise succeeded
var ErrNotInitialised = errors.New("renderer is not initialised")

// Swapper presents the back buffer of the window the context belongs to
type Swapper interface {
	Swap()
}

// NewGLRenderer creates a not yet initialised OpenGL renderer. The GL
// context of swapper has to be current on the calling thread.
func NewGLRenderer(swapper Swapper, cfg core.RendererConfiguration, loader assets.Loader) (*GLRenderer, error) {
	if swapper == nil {
		return nil, errors.New("renderer.NewGLRenderer(): no window to present to")
	}
	if loader == nil {
		return nil, errors.New("renderer.NewGLRenderer(): no asset loader")
	}
	return &GLRenderer{
		configuration: cfg,
		swapper:       swapper,
		loader:        loader,
		clearColor:    model.ClearColor(),
	}, nil
}

var _ core.Renderer = (*GLRenderer)(nil)

// GLRenderer is an OpenGL renderer drawing the triangle mesh
type GLRenderer struct {
	configuration core.RendererConfiguration

	swapper Swapper
	loader  assets.Loader

	clearColor glm.Vec4

	pipeline     *Pipeline
	vertexBuffer *VertexBuffer
	slice        Slice
}

// Initialise implements interface
func (r *GLRenderer) Initialise() error {
	vertexSource, err := r.loader.Load(r.configuration.VertexShader)
	if err != nil {
		return fmt.Errorf("load vertex shader: %s", err)
	}
	fragmentSource, err := r.loader.Load(r.configuration.FragmentShader)
	if err != nil {
		return fmt.Errorf("load fragment shader: %s", err)
	}

	pipeline, err := newPipeline(vertexSource, fragmentSource, model.VertexBindingDescription(), model.RenderTarget)
	if err != nil {
		return err
	}

	triangle := model.Triangle()
	vertexBuffer, slice := newVertexBuffer(pipeline, triangle[:])

	r.pipeline = pipeline
	r.vertexBuffer = vertexBuffer
	r.slice = slice

	log.WithFields(log.Fields{
		"vertex":   r.configuration.VertexShader,
		"fragment": r.configuration.FragmentShader,
		"vertices": slice.Count(),
	}).Info("Pipeline ready")

	return r.checkError("initialise")
}

// Draw implements interface
func (r *GLRenderer) Draw() error {
	if r.pipeline == nil {
		return ErrNotInitialised
	}

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.pipeline.program)
	gl.BindVertexArray(r.pipeline.vertexArray)
	gl.DrawArrays(gl.TRIANGLES, int32(r.slice.Start), r.slice.Count())
	gl.BindVertexArray(0)
	return nil
}

// Present implements interface
func (r *GLRenderer) Present() error {
	if r.pipeline == nil {
		return ErrNotInitialised
	}

	gl.Flush()
	r.swapper.Swap()
	return r.cleanup()
}

// cleanup drains the per-frame error state of the context.
func (r *GLRenderer) cleanup() error {
	return r.checkError("frame")
}

func (r *GLRenderer) checkError(stage string) error {
	var codes []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, errorName(code))
	}
	if len(codes) > 0 {
		return fmt.Errorf("gl.GetError(): %s: %v", stage, codes)
	}
	return nil
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}

// Destroy implements interface
func (r *GLRenderer) Destroy() {
	if r.vertexBuffer != nil {
		r.vertexBuffer.Release()
		r.vertexBuffer = nil
	}
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
}
