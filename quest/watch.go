package quest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to the quest file. A burst of editor writes is
// debounced into a single signal, emitted once the file has been quiet
// for the settle window, so the reload always sees the final content.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	events chan struct{}
	done   chan struct{}
}

// Watch starts watching the quest file's directory. Watching the
// directory rather than the file survives editors that replace the file
// on save.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching quest file: %w", err)
	}

	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.events)

	// Trailing debounce: every matching event rearms the timer, and the
	// signal fires only after settle with no further writes.
	const settle = 200 * time.Millisecond
	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(settle)
		case <-timer.C:
			select {
			case w.events <- struct{}{}:
			default: // a change is already pending
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Changes delivers one signal per settled quest file edit. The channel
// closes when the watcher stops.
func (w *Watcher) Changes() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
