package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/textgeom/style"
)

// watchStyles reloads the style sheet whenever the file changes on
// disk and posts the result into the UI event loop. The returned stop
// function releases the watcher.
func watchStyles(path string, u *ui) (stop func(), err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving style sheet path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating style watcher: %w", err)
	}

	// Watch the directory rather than the file: editors replace files
	// on save, which would drop a per-file watch.
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				sheet, err := style.LoadSheet(abs)
				if err != nil {
					// Keep the last good sheet until the file parses.
					continue
				}
				u.postSheet(sheet)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
