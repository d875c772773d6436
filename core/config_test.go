package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/triangle/core"
)

var base = core.Configuration{
	LogLevel: log.InfoLevel,
	Window: core.WindowConfiguration{
		Title:          "Triangle Example SDL",
		ScreenWidth:    1024,
		ScreenHeight:   768,
		GLMajorVersion: 3,
		GLMinorVersion: 2,
	},
}

func withEnv(c *qt.C, values map[string]string) {
	for k, v := range values {
		k, old := k, envy.Get(k, "")
		envy.Set(k, v)
		c.Cleanup(func() { envy.Set(k, old) })
	}
}

func TestConfigurationFromEnvDefaults(t *testing.T) {
	c := qt.New(t)
	withEnv(c, map[string]string{
		core.EnvLogLevel:      "",
		core.EnvFramesPerSec:  "",
		core.EnvShaderArchive: "",
	})

	cfg, err := core.ConfigurationFromEnv(base)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, base)
}

func TestConfigurationFromEnvOverrides(t *testing.T) {
	c := qt.New(t)
	withEnv(c, map[string]string{
		core.EnvLogLevel:      "debug",
		core.EnvFramesPerSec:  "60",
		core.EnvShaderArchive: "assets.kar",
	})

	cfg, err := core.ConfigurationFromEnv(base)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.LogLevel, qt.Equals, log.DebugLevel)
	c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 60)
	c.Assert(cfg.Renderer.ShaderArchive, qt.Equals, "assets.kar")
	c.Assert(cfg.Window, qt.DeepEquals, base.Window)
}

func TestConfigurationFromEnvInvalid(t *testing.T) {
	for _, tc := range []struct {
		key, value, err string
	}{
		{core.EnvLogLevel, "loud", `TRIANGLE_LOG_LEVEL: not a valid logrus Level: "loud"`},
		{core.EnvFramesPerSec, "fast", `TRIANGLE_FPS: .*invalid syntax`},
		{core.EnvFramesPerSec, "-1", `TRIANGLE_FPS: frame cap cannot be negative`},
		{core.EnvFramesPerSec, "2000000000", `TRIANGLE_FPS: frame cap above 1000000000`},
	} {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			c := qt.New(t)
			env := map[string]string{
				core.EnvLogLevel:     "",
				core.EnvFramesPerSec: "",
			}
			env[tc.key] = tc.value
			withEnv(c, env)

			_, err := core.ConfigurationFromEnv(base)
			c.Assert(err, qt.ErrorMatches, tc.err)
		})
	}
}
