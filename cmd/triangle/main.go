package main

import (
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/triangle/assets"
	"github.com/devblok/triangle/core"
	"github.com/devblok/triangle/device"
	"github.com/devblok/triangle/renderer"
)

func init() {
	runtime.LockOSThread()
}

var configuration = core.Configuration{
	LogLevel: log.InfoLevel,
	Window: core.WindowConfiguration{
		Title:          "Triangle Example SDL",
		ScreenWidth:    1024,
		ScreenHeight:   768,
		GLMajorVersion: 3,
		GLMinorVersion: 2,
	},
	Renderer: core.RendererConfiguration{
		VertexShader:   assets.VertexShader,
		FragmentShader: assets.FragmentShader,
	},
	Time: core.TimeConfiguration{
		FramesPerSecond: 0,
		StatsInterval:   5000,
	},
}

func must(err error, msg string) {
	if err != nil {
		log.WithError(err).Error(msg)
		panic(err)
	}
}

func shaderLoader(cfg core.RendererConfiguration) (assets.Loader, func()) {
	if cfg.ShaderArchive == "" {
		return assets.NewBoxLoader(), func() {}
	}
	loader, err := assets.NewArchiveLoader(cfg.ShaderArchive)
	must(err, "Opening shader archive failed")
	log.WithField("archive", cfg.ShaderArchive).Info("Loading shaders from archive")
	return loader, loader.Release
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := core.ConfigurationFromEnv(configuration)
	must(err, "Invalid configuration")
	log.SetLevel(cfg.LogLevel)

	sdlDevice, err := device.NewSDLDevice(cfg.Window)
	must(err, "Creating window failed")
	defer sdlDevice.Destroy()

	loader, release := shaderLoader(cfg.Renderer)
	defer release()

	glRenderer, err := renderer.NewGLRenderer(sdlDevice, cfg.Renderer, loader)
	must(err, "Creating renderer failed")
	defer glRenderer.Destroy()

	must(glRenderer.Initialise(), "Initialising renderer failed")

	core.NewLoop(glRenderer, sdlDevice, cfg.Time).Run()
}
