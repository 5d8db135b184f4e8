package i18n

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch hot-reloads locale files when they change on disk. It blocks until
// ctx is cancelled, so callers run it in a goroutine. Reload failures are
// logged and skipped; the previous bundle contents stay in effect.
func (b *Bundle) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			ext := filepath.Ext(event.Name)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := b.LoadFile(event.Name); err != nil {
				log.Printf("[I18N] Reload of %s failed: %v", event.Name, err)
				continue
			}
			log.Printf("[I18N] Reloaded translations from %s", event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[I18N] Watcher error: %v", err)
		}
	}
}
