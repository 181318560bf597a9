package config

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch reloads the user file whenever it is written, created or renamed
// into place and passes the result to onChange. The parent directory is
// watched so editors that replace the file are handled. Reload errors are
// logged and the previous settings stay in effect. Watch returns once the
// watcher is running; it stops when ctx is done.
func Watch(ctx context.Context, defaults []byte, path string, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create config watcher")
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return errors.Wrapf(err, "watch %s", dir)
	}

	target := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				c, err := Load(defaults, path)
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				log.Printf("Config reloaded from %s", path)
				onChange(c)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()
	return nil
}
