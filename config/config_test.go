package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "glsteps.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {

	path := writeFile(t, `
lesson = "layout"

[window]
backend = "glfw"
width = 640
height = 480

[quad]
color = "#ff000080"
animate = false

[debug]
log_level = "warn"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "layout", cfg.Lesson)
	assert.Equal(t, BackendGLFW, cfg.Window.Backend)
	assert.Equal(t, int32(640), cfg.Window.Width)
	assert.Equal(t, int32(480), cfg.Window.Height)
	assert.Equal(t, Color{255, 0, 0, 128}, cfg.Quad.Color)
	assert.False(t, cfg.Quad.Animate)
	assert.Equal(t, "warn", cfg.Debug.LogLevel)

	// Untouched values keep their defaults
	def := Default()
	assert.Equal(t, def.Window.Title, cfg.Window.Title)
	assert.Equal(t, def.Window.VSync, cfg.Window.VSync)
	assert.Equal(t, def.Quad.AnimateSpeed, cfg.Quad.AnimateSpeed)
	assert.Equal(t, def.Shaders, cfg.Shaders)
}

func TestLoadRejectsInvalid(t *testing.T) {

	_, err := Load(writeFile(t, "[window]\nbackend = \"vulkan\"\n"))
	assert.ErrorContains(t, err, "unknown window backend")

	_, err = Load(writeFile(t, "[window]\nwidth = 0\n"))
	assert.ErrorContains(t, err, "window size must be positive")

	_, err = Load(writeFile(t, "[quad]\ncolor = \"red\"\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "[capture]\npath = \"out.png\"\nframe = 0\n"))
	assert.ErrorContains(t, err, "capture frame")

	for _, speed := range []string{"-0.5", "1e10"} {
		_, err = Load(writeFile(t, "[quad]\nanimate_speed = "+speed+"\n"))
		assert.ErrorContains(t, err, "animate_speed", speed)
	}

	for _, speed := range []string{"inf", "nan"} {
		_, err = Load(writeFile(t, "[quad]\nanimate_speed = "+speed+"\n"))
		assert.Error(t, err, speed)
	}

	cfg := Default()
	cfg.Quad.AnimateSpeed = MaxAnimateSpeed
	assert.NoError(t, cfg.Validate())

	for _, speed := range []float64{math.Inf(1), math.NaN(), MaxAnimateSpeed + 1} {
		cfg.Quad.AnimateSpeed = float32(speed)
		assert.ErrorContains(t, cfg.Validate(), "animate_speed")
	}

	_, err = Load(writeFile(t, "this is not toml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteThenLoad(t *testing.T) {

	cfg := Default()
	cfg.Lesson = "mesh"
	cfg.Quad.Color = Color{1, 2, 3, 4}

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, Write(path, &cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestColorText(t *testing.T) {

	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#334CCC")))
	assert.Equal(t, Color{0x33, 0x4c, 0xcc, 0xff}, c)

	require.NoError(t, c.UnmarshalText([]byte("0a0b0c0d")))
	assert.Equal(t, Color{10, 11, 12, 13}, c)

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#0a0b0c0d", string(text))

	assert.Error(t, c.UnmarshalText([]byte("#fff")))
	assert.Error(t, c.UnmarshalText([]byte("#gggggg")))
}

func TestShippedConfigLoads(t *testing.T) {

	cfg, err := Load("../res/config.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
