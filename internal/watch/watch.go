// Package watch reports file writes under a set of directory trees.
// Events are delivered synchronously, one at a time, with no batching.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// ErrNoRoots is returned by New when there is nothing to watch.
var ErrNoRoots = errors.New("watch: no directories to watch")

// Handler receives the path of a file that was written or created.
type Handler func(path string)

// Watcher watches directory trees. New subdirectories are added as they
// appear.
type Watcher struct {
	fs     *fsnotify.Watcher
	handle Handler
	log    *logrus.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// New starts watching every directory under roots.
func New(roots []string, handle Handler, log *logrus.Logger) (*Watcher, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	if log == nil {
		log = logrus.New()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	for _, root := range roots {
		if err := addWatchTree(fw, root); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch: %s: %w", root, err)
		}
	}

	return &Watcher{
		fs:     fw,
		handle: handle,
		log:    log,
		closed: make(chan struct{}),
	}, nil
}

// Run dispatches events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.closed:
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.dispatch(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch: event error")
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closed)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) dispatch(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if event.Has(fsnotify.Create) {
			_ = addWatchTree(w.fs, event.Name)
			w.scanNewDir(event.Name)
		}
		return
	}

	w.log.WithFields(logrus.Fields{"file": event.Name, "op": event.Op.String()}).Debug("watch: changed")
	w.handle(event.Name)
}

// scanNewDir reports files that appeared in a directory before it was
// watched.
func (w *Watcher) scanNewDir(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		w.handle(path)
		return nil
	})
}

func addWatchTree(fw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("not a directory")
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			_ = fw.Add(path)
		}
		return nil
	})
}
