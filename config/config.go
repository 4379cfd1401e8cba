// Package config loads the settings of the tutorial app from a TOML file.
// Every field has a default, so the file only needs the values being changed.
package config

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bloeys/glsteps/logging"
)

const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"

	// MaxAnimateSpeed is the fastest quad color animation, in full 0 to 1 sweeps per second
	MaxAnimateSpeed = 100
)

type Config struct {
	// Lesson is the name or 1-based number of the lesson shown at startup
	Lesson string `toml:"lesson"`

	Window  Window  `toml:"window"`
	Quad    Quad    `toml:"quad"`
	Shaders Shaders `toml:"shaders"`
	Models  Models  `toml:"models"`
	Debug   Debug   `toml:"debug"`
	Capture Capture `toml:"capture"`
}

type Window struct {
	Title   string `toml:"title"`
	Width   int32  `toml:"width"`
	Height  int32  `toml:"height"`
	Backend string `toml:"backend"`
	VSync   bool   `toml:"vsync"`
	MSAA    bool   `toml:"msaa"`
	SRGB    bool   `toml:"srgb"`
}

type Quad struct {
	Color   Color `toml:"color"`
	Animate bool  `toml:"animate"`
	// AnimateSpeed is how much the red channel changes per second
	AnimateSpeed float32 `toml:"animate_speed"`
}

type Shaders struct {
	Dir       string `toml:"dir"`
	HotReload bool   `toml:"hot_reload"`
}

type Models struct {
	Dir string `toml:"dir"`
}

type Debug struct {
	GLErrors bool   `toml:"gl_errors"`
	LogLevel string `toml:"log_level"`
}

type Capture struct {
	// Path of a PNG to write. When set the app renders Frame frames, saves the last one and exits
	Path  string `toml:"path"`
	Frame int    `toml:"frame"`
}

func Default() Config {
	return Config{
		Lesson: "1",
		Window: Window{
			Title:   "glsteps",
			Width:   960,
			Height:  540,
			Backend: BackendSDL,
			VSync:   true,
			MSAA:    true,
			SRGB:    true,
		},
		Quad: Quad{
			Color:        Color{51, 76, 204, 255},
			Animate:      true,
			AnimateSpeed: 0.5,
		},
		Shaders: Shaders{
			Dir:       "./res/shaders",
			HotReload: true,
		},
		Models: Models{
			Dir: "./res/models",
		},
		Debug: Debug{
			GLErrors: true,
			LogLevel: "info",
		},
		Capture: Capture{
			Frame: 3,
		},
	}
}

// Load reads the TOML file at path on top of the defaults.
// Unknown keys are logged but don't fail the load.
func Load(path string) (Config, error) {

	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s'. Err: %w", path, err)
	}

	for _, k := range md.Undecoded() {
		logging.WarnLog.Printf("Unknown config key '%s' in '%s'\n", k.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file '%s'. Err: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault is like Load but returns the defaults if the file doesn't exist
func LoadOrDefault(path string) (Config, error) {

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logging.InfoLog.Printf("Config file '%s' not found, using defaults\n", path)
		return Default(), nil
	}

	return Load(path)
}

func Write(path string, cfg *Config) error {

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config. Err: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

func (c *Config) Validate() error {

	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Window.Backend != BackendSDL && c.Window.Backend != BackendGLFW {
		errs = append(errs, fmt.Errorf("unknown window backend '%s'. Must be '%s' or '%s'", c.Window.Backend, BackendSDL, BackendGLFW))
	}

	speed := float64(c.Quad.AnimateSpeed)
	if math.IsNaN(speed) || speed < 0 || speed > MaxAnimateSpeed {
		errs = append(errs, fmt.Errorf("quad animate_speed must be between 0 and %v, got %v", MaxAnimateSpeed, c.Quad.AnimateSpeed))
	}

	if strings.TrimSpace(c.Lesson) == "" {
		errs = append(errs, errors.New("lesson can't be empty"))
	}

	if _, err := logging.ParseLevel(c.Debug.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if c.Capture.Path != "" && c.Capture.Frame < 1 {
		errs = append(errs, fmt.Errorf("capture frame must be at least 1, got %d", c.Capture.Frame))
	}

	return errors.Join(errs...)
}

// Color is an 8-bit sRGB color written as '#rrggbb' or '#rrggbbaa' in config files
type Color [4]uint8

func (c Color) MarshalText() ([]byte, error) {
	return []byte("#" + hex.EncodeToString(c[:])), nil
}

func (c *Color) UnmarshalText(text []byte) error {

	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color '%s'. Must be '#rrggbb' or '#rrggbbaa'", text)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid color '%s'. Err: %w", text, err)
	}

	if len(b) == 3 {
		b = append(b, 255)
	}

	copy(c[:], b)
	return nil
}
