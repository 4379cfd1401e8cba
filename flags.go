package main

import (
	"flag"

	"github.com/bloeys/glsteps/config"
)

type cliFlags struct {
	configPath  string
	listLessons bool

	lesson  string
	backend string
	width   int
	height  int
	vsync   bool
	msaa    bool
	srgb    bool

	capturePath  string
	captureFrame int

	logLevel   string
	noGLErrors bool

	cpuProfile string
	memProfile string
}

// parseFlags registers and parses the command line. Flags only override the config
// file when given explicitly, see apply.
func parseFlags(fs *flag.FlagSet, args []string) cliFlags {

	f := cliFlags{}
	def := config.Default()

	fs.StringVar(&f.configPath, "config", "./res/config.toml", "path of the TOML config file. Defaults are used if it doesn't exist")
	fs.BoolVar(&f.listLessons, "list", false, "print the lessons and exit")

	fs.StringVar(&f.lesson, "lesson", def.Lesson, "lesson to start at, by name or number")
	fs.StringVar(&f.backend, "backend", def.Window.Backend, "window backend: 'sdl' or 'glfw'")
	fs.IntVar(&f.width, "width", int(def.Window.Width), "window width")
	fs.IntVar(&f.height, "height", int(def.Window.Height), "window height")
	fs.BoolVar(&f.vsync, "vsync", def.Window.VSync, "enable vsync")
	fs.BoolVar(&f.msaa, "msaa", def.Window.MSAA, "enable 4x MSAA")
	fs.BoolVar(&f.srgb, "srgb", def.Window.SRGB, "render into an sRGB framebuffer")

	fs.StringVar(&f.capturePath, "capture", "", "render a few frames, save the last one as a PNG at this path and exit")
	fs.IntVar(&f.captureFrame, "capture-frame", def.Capture.Frame, "frame number saved by -capture")

	fs.StringVar(&f.logLevel, "log-level", def.Debug.LogLevel, "minimum log level: info, warn or error")
	fs.BoolVar(&f.noGLErrors, "no-gl-errors", false, "don't check the OpenGL error queue after calls")

	fs.StringVar(&f.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	fs.StringVar(&f.memProfile, "memprofile", "", "write a heap profile to this file on exit")

	fs.Parse(args)
	return f
}

// apply overrides cfg with the flags that were set on the command line
func (f *cliFlags) apply(fs *flag.FlagSet, cfg *config.Config) {

	fs.Visit(func(fl *flag.Flag) {

		switch fl.Name {
		case "lesson":
			cfg.Lesson = f.lesson
		case "backend":
			cfg.Window.Backend = f.backend
		case "width":
			cfg.Window.Width = int32(f.width)
		case "height":
			cfg.Window.Height = int32(f.height)
		case "vsync":
			cfg.Window.VSync = f.vsync
		case "msaa":
			cfg.Window.MSAA = f.msaa
		case "srgb":
			cfg.Window.SRGB = f.srgb
		case "capture":
			cfg.Capture.Path = f.capturePath
		case "capture-frame":
			cfg.Capture.Frame = f.captureFrame
		case "log-level":
			cfg.Debug.LogLevel = f.logLevel
		case "no-gl-errors":
			cfg.Debug.GLErrors = !f.noGLErrors
		}
	})
}
