package render

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/tienda/pkg/logger"
)

// ErrWatch is returned when the template directory cannot be watched.
var ErrWatch = errors.New("failed to watch templates")

const reloadDebounce = 100 * time.Millisecond

// Watch reloads r whenever a file under dir changes, until ctx is done.
// dir must be the directory r was created from with WithFS(os.DirFS(dir), ".").
// Bursts of events within 100ms trigger one reload; parse errors are logged
// and the previous templates stay active.
func (r *Renderer) Watch(ctx context.Context, dir string, log *slog.Logger) error {
	if log == nil {
		log = logger.Discard()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrWatch, err)
	}
	defer w.Close()

	// fsnotify is not recursive.
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrWatch, err)
	}

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = w.Add(ev.Name)
				}
			}
			timer.Reset(reloadDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WarnContext(ctx, "template watcher error", logger.Error(err), logger.Component("render"))

		case <-timer.C:
			if err := r.Reload(); err != nil {
				log.ErrorContext(ctx, "template reload failed", logger.Error(err), logger.Component("render"))
				continue
			}
			log.InfoContext(ctx, "templates reloaded", slog.Int("count", len(r.Names())), logger.Component("render"))
		}
	}
}
