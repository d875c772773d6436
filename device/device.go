// Package device creates the window and the rendering context that belongs to it.
package device

import "github.com/devblok/triangle/core"

// Info describes the rendering context that was obtained
type Info struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
}

// Device describes a windowed rendering context.
// All methods have to be called from the thread that created it.
type Device interface {
	core.EventSource

	// Info returns details of the created context
	Info() Info

	// Swap presents the back buffer of the window
	Swap()

	// Destroy destroys the context and the window
	Destroy()
}
