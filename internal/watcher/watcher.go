// Package watcher watches a puzzle data tree for input file changes.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/puzzlein/puzzlein/internal/logging"
)

type EventType string

const (
	EventCreate EventType = "create"
	EventWrite  EventType = "write"
	EventMove   EventType = "move"
	EventDelete EventType = "delete"
)

type InputEvent struct {
	Type EventType
	Path string
}

// Handler receives input file events.
type Handler interface {
	HandleInputEvent(event InputEvent) error
}

// inputFileRegex matches input05.txt, test05.txt and their _<part>
// variants.
var inputFileRegex = regexp.MustCompile(`^(input|test)\d{2,}(_\d+)?$`)

type Watcher struct {
	fsWatcher *fsnotify.Watcher
	handler   Handler
	log       *logging.Logger
	recursive bool
}

type Option func(*Watcher)

func WithRecursive(recursive bool) Option {
	return func(w *Watcher) {
		w.recursive = recursive
	}
}

func WithLogger(log *logging.Logger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

func NewWatcher(handler Handler, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		handler:   handler,
		log:       logging.Nop(),
		recursive: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

func (w *Watcher) Watch(paths []string) error {
	for _, path := range paths {
		if w.recursive {
			if err := w.addRecursive(path); err != nil {
				return err
			}
		} else {
			if err := w.fsWatcher.Add(path); err != nil {
				return fmt.Errorf("unable to watch %s: %w", path, err)
			}
			w.log.Info("watch", "watching", logging.F("path", path))
		}
	}
	return nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("unable to watch %s: %w", path, err)
		}
		w.log.Info("watch", "watching", logging.F("path", path))
		return nil
	})
}

func (w *Watcher) Start() error {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if w.recursive && !strings.HasPrefix(filepath.Base(event.Name), ".") {
						if err := w.fsWatcher.Add(event.Name); err != nil {
							w.log.Error("watch", "unable to watch new directory", err, logging.F("path", event.Name))
							continue
						}
						w.log.Info("watch", "watching new directory", logging.F("path", event.Name))
					}
					continue
				}
			}

			if err := w.handleEvent(event); err != nil {
				w.log.Error("watch", "event handler failed", err, logging.F("path", event.Name))
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Error("watch", "watcher error", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event) error {
	if !IsInputFile(event.Name) {
		return nil
	}

	eventType := EventCreate
	if event.Op&fsnotify.Write == fsnotify.Write {
		eventType = EventWrite
	} else if event.Op&fsnotify.Rename == fsnotify.Rename {
		eventType = EventMove
	} else if event.Op&fsnotify.Remove == fsnotify.Remove {
		eventType = EventDelete
	}

	w.log.Debug("watch", "event", logging.F("type", eventType), logging.F("file", filepath.Base(event.Name)))

	return w.handler.HandleInputEvent(InputEvent{
		Type: eventType,
		Path: event.Name,
	})
}

// IsInputFile reports whether path names a puzzle input or test file.
func IsInputFile(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if !strings.EqualFold(ext, ".txt") {
		return false
	}
	return inputFileRegex.MatchString(strings.TrimSuffix(base, ext))
}
