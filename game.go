package main

import (
	"fmt"

	"github.com/bloeys/glsteps/config"
	"github.com/bloeys/glsteps/engine"
	"github.com/bloeys/glsteps/input"
	"github.com/bloeys/glsteps/lessons"
	"github.com/bloeys/glsteps/logging"
	"github.com/bloeys/glsteps/renderer/rend3dgl"
	"github.com/bloeys/glsteps/shaders"
	"github.com/bloeys/glsteps/timing"
)

var _ engine.Game = &Game{}

type Game struct {
	Cfg  *config.Config
	Win  engine.Window
	Rend *rend3dgl.Rend3DGL
	Ctx  *lessons.Context

	Lesson      lessons.Lesson
	LessonIndex int

	// ExitErr is set when the game stops because of an error
	ExitErr error

	watcher *shaders.Watcher

	captureRequested bool
	captureCount     int
}

func NewGame(cfg *config.Config, win engine.Window, rend *rend3dgl.Rend3DGL) *Game {

	w, h := win.DrawableSize()
	return &Game{
		Cfg:         cfg,
		Win:         win,
		Rend:        rend,
		Ctx:         lessons.NewContext(cfg, rend, w, h),
		LessonIndex: -1,
	}
}

func (g *Game) Init() {

	if g.Cfg.Shaders.HotReload && g.Cfg.Capture.Path == "" {

		w, err := shaders.NewWatcher(shaders.DefaultDebounce)
		if err != nil {
			logging.WarnLog.Println("Shader hot reload disabled. Err: ", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.setLesson(lessons.Index(g.Cfg.Lesson)); err != nil {
		g.ExitErr = err
		engine.Quit()
	}
}

func (g *Game) handleResize(width, height int32) {
	g.Ctx.Resize(width, height)
}

// setLesson switches to the lesson at index i. If the new lesson fails to
// initialize the current one stays active.
func (g *Game) setLesson(i int) error {

	all := lessons.All()
	if i < 0 || i >= len(all) {
		return fmt.Errorf("lesson index %d out of range [1, %d]", i+1, len(all))
	}

	if i == g.LessonIndex {
		return nil
	}

	l := all[i]
	if err := l.Init(g.Ctx); err != nil {
		l.Delete()
		return fmt.Errorf("failed to init lesson '%s'. Err: %w", l.Name(), err)
	}

	if g.Lesson != nil {
		g.Lesson.Delete()
	}

	// Lessons bind GL objects directly, so nothing cached by the renderer is valid anymore
	g.Rend.Invalidate()

	g.Lesson = l
	g.LessonIndex = i
	g.Win.SetTitle(fmt.Sprintf("%s | %d/%d: %s", g.Cfg.Window.Title, i+1, len(all), l.Title()))
	logging.InfoLog.Printf("Lesson %d: %s\n", i+1, l.Name())

	if g.watcher != nil {
		for _, p := range l.ShaderPaths() {
			if err := g.watcher.Add(p); err != nil {
				logging.WarnLog.Printf("Failed to watch shader '%s'. Err: %v\n", p, err)
			}
		}
	}

	return nil
}

// nextLessonIndex returns the lesson selected by this frame's key presses,
// or current if none of the lesson keys were pressed.
func nextLessonIndex(current, count int) int {

	if count <= 0 {
		return current
	}

	if input.KeyClicked(input.KeyRight) || input.KeyClicked(input.KeyN) {
		return (current + 1) % count
	}

	if input.KeyClicked(input.KeyLeft) || input.KeyClicked(input.KeyP) {
		return (current - 1 + count) % count
	}

	for n := 1; n <= count && n <= 9; n++ {
		if input.KeyClicked(input.NumberKey(n)) {
			return n - 1
		}
	}

	return current
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(input.KeyEscape) {
		engine.Quit()
	}

	if next := nextLessonIndex(g.LessonIndex, len(lessons.All())); next != g.LessonIndex {
		if err := g.setLesson(next); err != nil {
			logging.ErrLog.Println(err)
		}
	}

	if input.KeyClicked(input.KeySpace) {
		g.Ctx.Animate = !g.Ctx.Animate
	}

	if input.KeyClicked(input.KeyR) {
		g.reloadShaders()
	}

	if input.KeyClicked(input.KeyF12) {
		g.captureRequested = true
	}

	g.pollShaderChanges()

	if g.Ctx.Animate {
		g.Ctx.Ramp.Step(timing.DT())
	}

	g.Lesson.Update(g.Ctx)
}

func (g *Game) pollShaderChanges() {

	if g.watcher == nil {
		return
	}

	// Drain everything so a burst of saves reloads once
	changed := false
drain:
	for {
		select {
		case p := <-g.watcher.Changed():
			logging.InfoLog.Printf("Shader '%s' changed\n", p)
			changed = true
		default:
			break drain
		}
	}

	if changed {
		g.reloadShaders()
	}
}

func (g *Game) reloadShaders() {

	if len(g.Lesson.ShaderPaths()) == 0 {
		logging.InfoLog.Printf("Lesson '%s' has inline shaders, nothing to reload\n", g.Lesson.Name())
		return
	}

	if err := g.Lesson.Reload(); err != nil {
		logging.ErrLog.Println("Shader reload failed, keeping the old shaders. Err: ", err)
		return
	}

	g.Rend.Invalidate()
	logging.InfoLog.Printf("Reloaded shaders of lesson '%s'\n", g.Lesson.Name())
}

func (g *Game) Render() {
	g.Lesson.Render(g.Ctx)
}

func (g *Game) FrameEnd() {

	if g.captureRequested {

		g.captureRequested = false
		g.captureCount++

		path := fmt.Sprintf("glsteps_%s_%d.png", g.Lesson.Name(), g.captureCount)
		if err := g.capture(path); err != nil {
			logging.ErrLog.Println("Capture failed. Err: ", err)
		}
	}

	// timing.FrameCount is incremented after FrameEnd, so this is the 1-based number of the frame just rendered
	if g.Cfg.Capture.Path != "" && timing.FrameCount()+1 >= uint64(g.Cfg.Capture.Frame) {

		if err := g.capture(g.Cfg.Capture.Path); err != nil {
			g.ExitErr = err
		}
		engine.Quit()
	}
}

func (g *Game) DeInit() {

	if g.watcher != nil {
		g.watcher.Close()
	}

	if g.Lesson != nil {
		g.Lesson.Delete()
	}
}
