// Package watcher provides debounced file watching for stylesheet
// documents built on fsnotify.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// FileFilter determines if a file should be watched
type FileFilter func(path string) bool

// ChangeHandler handles a debounced batch of file change events
type ChangeHandler func(events []ChangeEvent) error

// YAMLFileFilter accepts .yml and .yaml files.
func YAMLFileFilter(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

// FileWatcher watches for file changes and delivers them to handlers in
// debounced batches.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mutex    sync.RWMutex
	filters  []FileFilter
	handlers []ChangeHandler

	stopOnce sync.Once
}

// NewFileWatcher creates a watcher that groups changes arriving within
// the debounce window into one handler invocation.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
	}, nil
}

// AddFilter registers a file filter. With no filters, all paths pass.
func (fw *FileWatcher) AddFilter(filter FileFilter) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.filters = append(fw.filters, filter)
}

// AddHandler registers a change handler.
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// AddPath watches a file or directory.
func (fw *FileWatcher) AddPath(path string) error {
	return fw.watcher.Add(path)
}

// Start processes events until ctx is cancelled. Handler errors are
// returned through errs; the loop keeps running after a handler error.
func (fw *FileWatcher) Start(ctx context.Context, errs chan<- error) {
	var (
		pending []ChangeEvent
		timer   *time.Timer
		timerC  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			change, accepted := fw.translate(event)
			if !accepted {
				continue
			}

			pending = append(pending, change)
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(fw.debounce)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			if errs != nil {
				errs <- err
			}

		case <-timerC:
			batch := pending
			pending = nil
			timerC = nil
			timer = nil

			fw.dispatch(batch, errs)
		}
	}
}

// Stop closes the underlying watcher. Safe to call more than once.
func (fw *FileWatcher) Stop() error {
	var err error
	fw.stopOnce.Do(func() {
		err = fw.watcher.Close()
	})

	return err
}

func (fw *FileWatcher) translate(event fsnotify.Event) (ChangeEvent, bool) {
	fw.mutex.RLock()
	filters := fw.filters
	fw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return ChangeEvent{}, false
		}
	}

	change := ChangeEvent{Path: event.Name}

	switch {
	case event.Op.Has(fsnotify.Create):
		change.Type = EventTypeCreated
	case event.Op.Has(fsnotify.Write):
		change.Type = EventTypeModified
	case event.Op.Has(fsnotify.Remove):
		change.Type = EventTypeDeleted
	case event.Op.Has(fsnotify.Rename):
		change.Type = EventTypeRenamed
	default:
		return ChangeEvent{}, false
	}

	if info, err := os.Stat(event.Name); err == nil {
		change.ModTime = info.ModTime()
	}

	return change, true
}

func (fw *FileWatcher) dispatch(batch []ChangeEvent, errs chan<- error) {
	if len(batch) == 0 {
		return
	}

	fw.mutex.RLock()
	handlers := fw.handlers
	fw.mutex.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil && errs != nil {
			errs <- err
		}
	}
}
