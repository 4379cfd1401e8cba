package main

import (
	"flag"
	"testing"

	"github.com/bloeys/glsteps/config"
	"github.com/stretchr/testify/assert"
)

func TestFlagsOnlyOverrideWhatIsSet(t *testing.T) {

	fs := flag.NewFlagSet("glsteps", flag.ContinueOnError)
	f := parseFlags(fs, []string{"-lesson", "layout", "-width", "640", "-no-gl-errors", "-backend", "glfw"})

	cfg := config.Default()
	cfg.Window.Height = 123
	cfg.Window.VSync = false

	f.apply(fs, &cfg)

	assert.Equal(t, "layout", cfg.Lesson)
	assert.Equal(t, int32(640), cfg.Window.Width)
	assert.Equal(t, "glfw", cfg.Window.Backend)
	assert.False(t, cfg.Debug.GLErrors)

	// Not given on the command line, so the config values stay even though they differ from the flag defaults
	assert.Equal(t, int32(123), cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "./res/config.toml", f.configPath)
}

func TestCaptureFlags(t *testing.T) {

	fs := flag.NewFlagSet("glsteps", flag.ContinueOnError)
	f := parseFlags(fs, []string{"-capture", "out.png", "-capture-frame=5", "-srgb=false"})

	cfg := config.Default()
	f.apply(fs, &cfg)

	assert.Equal(t, "out.png", cfg.Capture.Path)
	assert.Equal(t, 5, cfg.Capture.Frame)
	assert.False(t, cfg.Window.SRGB)
	assert.NoError(t, cfg.Validate())
}
