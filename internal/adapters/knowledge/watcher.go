package knowledge

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watch reloads the document at path into b whenever the file changes, until
// ctx is cancelled. A document that fails to load is logged and the previous
// one keeps being served.
//
// The parent directory is watched so that editors replacing the file by rename
// are picked up.
func Watch(ctx context.Context, b *Base, path string, log ports.Logger) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create knowledge base watcher")
	}

	path = filepath.Clean(path)
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.Wrap(err, "failed to watch knowledge base"), "path", path)
	}

	go func() {
		defer fsWatcher.Close() //nolint:errcheck // nothing to do on close failure
		processEvents(ctx, fsWatcher, b, path, log)
	}()
	return nil
}

func processEvents(ctx context.Context, w *fsnotify.Watcher, b *Base, path string, log ports.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			doc, err := Load(path)
			if err != nil {
				log.Warn("keeping previous knowledge base: " + err.Error())
				continue
			}
			b.Swap(doc)
			log.Info("reloaded knowledge base from " + path)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("knowledge base watcher: " + err.Error())
		}
	}
}
