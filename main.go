package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/bloeys/glsteps/config"
	"github.com/bloeys/glsteps/engine"
	"github.com/bloeys/glsteps/glerr"
	"github.com/bloeys/glsteps/lessons"
	"github.com/bloeys/glsteps/logging"
	"github.com/bloeys/glsteps/renderer/rend3dgl"
)

func main() {
	os.Exit(run())
}

// run returns the exit code. Failures before the engine is initialized are fatal,
// later ones return so deferred cleanup still runs.
func run() int {

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags := parseFlags(fs, os.Args[1:])

	if flags.listLessons {
		for i, l := range lessons.All() {
			fmt.Printf("%d. %-14s %s\n", i+1, l.Name(), l.Title())
		}
		return 0
	}

	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err: ", err)
	}

	flags.apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		logging.ErrLog.Fatalln("Invalid settings. Err: ", err)
	}

	// Validated above
	level, _ := logging.ParseLevel(cfg.Debug.LogLevel)
	logging.SetLevel(level)
	glerr.Enabled = cfg.Debug.GLErrors

	if _, err := lessons.Find(cfg.Lesson); err != nil {
		logging.ErrLog.Fatalln(err)
	}

	backend, err := engine.ParseBackend(cfg.Window.Backend)
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}

	//Init engine
	err = engine.Init(backend)
	if err != nil {
		logging.ErrLog.Println("Failed to init engine. Err:", err)
		return 1
	}
	defer engine.DeInit()

	//Create window
	window, err := engine.CreateOpenGLWindowCentered(engine.WindowOptions{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: true,
		VSync:     cfg.Window.VSync,
		MSAA:      cfg.Window.MSAA,
		SRGB:      cfg.Window.SRGB,
	})
	if err != nil {
		logging.ErrLog.Println("Failed to create window. Err: ", err)
		return 1
	}
	defer window.Destroy()

	game := NewGame(&cfg, window, rend3dgl.NewRend3DGL())
	window.OnResize(game.handleResize)

	if flags.cpuProfile != "" {

		pf, err := os.Create(flags.cpuProfile)
		if err == nil {
			defer pf.Close()
			pprof.StartCPUProfile(pf)
			defer pprof.StopCPUProfile()
		} else {
			logging.ErrLog.Printf("Creating %s file failed. CPU profiling will not run. Err=%v\n", flags.cpuProfile, err)
		}
	}

	engine.Run(game, window, game.Rend)

	if flags.memProfile != "" {
		writeHeapProfile(flags.memProfile)
	}

	if game.ExitErr != nil {
		logging.ErrLog.Println(game.ExitErr)
		return 1
	}

	return 0
}

func writeHeapProfile(path string) {

	heapProfile, err := os.Create(path)
	if err != nil {
		logging.ErrLog.Printf("Creating %s file failed. Err=%v\n", path, err)
		return
	}
	defer heapProfile.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(heapProfile)
	if err != nil {
		logging.ErrLog.Printf("Writing heap profile to %s failed. Err=%v\n", path, err)
	}
}
