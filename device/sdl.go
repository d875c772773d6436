package device

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/triangle/core"
)

// NewSDLDevice initialises SDL video, opens a window and creates an
// OpenGL core profile context of the requested version on it.
func NewSDLDevice(cfg core.WindowConfiguration) (*SDLDevice, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl.Init(): %s", err)
	}

	d := &SDLDevice{}

	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajorVersion},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinorVersion},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_RED_SIZE, 8},
		{sdl.GL_GREEN_SIZE, 8},
		{sdl.GL_BLUE_SIZE, 8},
		{sdl.GL_ALPHA_SIZE, 8},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_STENCIL_SIZE, 8},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			d.Destroy()
			return nil, fmt.Errorf("sdl.GLSetAttribute(): %s", err)
		}
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		cfg.ScreenWidth,
		cfg.ScreenHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		d.Destroy()
		return nil, fmt.Errorf("sdl.CreateWindow(): %s", err)
	}
	d.window = window

	context, err := window.GLCreateContext()
	if err != nil {
		d.Destroy()
		return nil, fmt.Errorf("sdl.GLCreateContext(): %s", err)
	}
	d.context = context

	if err := gl.Init(); err != nil {
		d.Destroy()
		return nil, fmt.Errorf("gl.Init(): %s", err)
	}

	d.info = Info{
		Vendor:          gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:         gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguage: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}

	log.WithFields(log.Fields{
		"title":    cfg.Title,
		"width":    cfg.ScreenWidth,
		"height":   cfg.ScreenHeight,
		"renderer": d.info.Renderer,
		"version":  d.info.Version,
	}).Info("Window created")

	return d, nil
}

var _ Device = (*SDLDevice)(nil)

// SDLDevice is a SDL window with an OpenGL context.
type SDLDevice struct {
	window  *sdl.Window
	context sdl.GLContext
	info    Info
}

// PollEvent implements interface
func (d *SDLDevice) PollEvent() (core.Event, bool) {
	event := sdl.PollEvent()
	if event == nil {
		return core.Event{}, false
	}
	return translateEvent(event), true
}

// Info implements interface
func (d *SDLDevice) Info() Info {
	return d.info
}

// Swap implements interface
func (d *SDLDevice) Swap() {
	d.window.GLSwap()
}

// Destroy implements interface
func (d *SDLDevice) Destroy() {
	if d == nil {
		return
	}
	if d.context != nil {
		sdl.GLDeleteContext(d.context)
		d.context = nil
	}
	if d.window != nil {
		d.window.Destroy()
		d.window = nil
	}
	sdl.Quit()
}
