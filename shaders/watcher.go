package shaders

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/bloeys/glsteps/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before a change is reported.
// Editors often write a file in several steps (truncate, write, chmod).
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to shader files so they can be recompiled.
//
// Changes are delivered on Changed() and must be handled on the thread owning the GL context,
// so the usual pattern is a non-blocking receive once per frame:
//
//	select {
//	case path := <-w.Changed():
//		reload(path)
//	default:
//	}
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	changed  chan string

	// files holds the cleaned paths being watched. Directories are watched
	// instead of files so that editors replacing files by renaming still work.
	mu    sync.Mutex
	files map[string]struct{}

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

func NewWatcher(debounce time.Duration) (*Watcher, error) {

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		changed:  make(chan string, 16),
		files:    make(map[string]struct{}),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Add starts watching path
func (w *Watcher) Add(path string) error {

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if w.isWatched(abs) {
		return nil
	}

	// Adding the same directory twice is fine with fsnotify
	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	w.mu.Lock()
	w.files[abs] = struct{}{}
	w.mu.Unlock()

	return nil
}

// Changed delivers the absolute paths of watched files that changed
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

func (w *Watcher) Close() error {

	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})

	return err
}

func (w *Watcher) isWatched(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[path]
	return ok
}

func (w *Watcher) run() {

	defer w.wg.Done()

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {

		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			path, err := filepath.Abs(event.Name)
			if err != nil || !w.isWatched(path) {
				continue
			}

			pending[path] = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			logging.ErrLog.Println("Shader watcher error. Err: ", err)

		case now := <-ticker.C:
			for path, lastEvent := range pending {

				if now.Sub(lastEvent) < w.debounce {
					continue
				}

				delete(pending, path)

				// Drop the notification if nobody is reading, a reload will happen
				// on the next change anyway
				select {
				case w.changed <- path:
				default:
					logging.WarnLog.Printf("Dropped shader change notification for '%s'\n", path)
				}
			}
		}
	}
}
