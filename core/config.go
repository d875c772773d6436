package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"
)

// Environment keys that may override parts of the configuration
const (
	EnvLogLevel      = "TRIANGLE_LOG_LEVEL"
	EnvFramesPerSec  = "TRIANGLE_FPS"
	EnvShaderArchive = "TRIANGLE_SHADER_ARCHIVE"
)

// MaxFramesPerSecond is the highest frame cap a ticker can keep,
// one frame per nanosecond.
const MaxFramesPerSecond = int(time.Second)

// Configuration defines a global configuration setting
type Configuration struct {
	LogLevel log.Level

	Window   WindowConfiguration
	Renderer RendererConfiguration
	Time     TimeConfiguration
}

// WindowConfiguration is used to configure the window and its GL context
type WindowConfiguration struct {
	Title string

	ScreenWidth  int32
	ScreenHeight int32

	// Requested OpenGL core profile version
	GLMajorVersion int
	GLMinorVersion int
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	VertexShader   string
	FragmentShader string

	// ShaderArchive is a kar archive to load shaders from.
	// Shaders bundled with the binary are used when empty.
	ShaderArchive string
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// StatsInterval is how often, in milliseconds, frame
	// statistics are logged. Disabled when 0.
	StatsInterval int
}

// ConfigurationFromEnv overlays values found in the environment
// (or a .env file) on top of base.
func ConfigurationFromEnv(base Configuration) (Configuration, error) {
	cfg := base

	if lvl := envy.Get(EnvLogLevel, ""); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			return base, fmt.Errorf("%s: %s", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if fps := envy.Get(EnvFramesPerSec, ""); fps != "" {
		num, err := strconv.Atoi(fps)
		if err != nil {
			return base, fmt.Errorf("%s: %s", EnvFramesPerSec, err)
		}
		if num < 0 {
			return base, fmt.Errorf("%s: frame cap cannot be negative", EnvFramesPerSec)
		}
		if num > MaxFramesPerSecond {
			return base, fmt.Errorf("%s: frame cap above %d", EnvFramesPerSec, MaxFramesPerSecond)
		}
		cfg.Time.FramesPerSecond = num
	}

	if archive := envy.Get(EnvShaderArchive, ""); archive != "" {
		cfg.Renderer.ShaderArchive = archive
	}
	return cfg, nil
}
