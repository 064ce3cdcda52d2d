package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/idms-console/internal/core/domain"
	"github.com/custodia-labs/idms-console/internal/core/ports/driven"
	"github.com/custodia-labs/idms-console/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FolderWatcher = (*Watcher)(nil)

// DefaultSettle is how long a file must stay unchanged before it is emitted.
const DefaultSettle = 500 * time.Millisecond

// Watcher emits files dropped into a directory once writes to them settle.
// A copy into the folder produces one Create and several Write events; the
// file is reported once, after the last of them.
type Watcher struct {
	settle time.Duration
}

// NewWatcher creates a watcher. A non-positive settle uses DefaultSettle.
func NewWatcher(settle time.Duration) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{settle: settle}
}

// Watch starts watching dir (not recursively).
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan domain.UploadFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	out := make(chan domain.UploadFile)
	go w.loop(ctx, fsw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- domain.UploadFile) {
	defer close(out)
	defer fsw.Close()

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if path, ok := handleFsEvent(event); ok {
				pending[path] = time.Now()
			} else if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				delete(pending, event.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("drop folder watcher: %v", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.settle {
					continue
				}
				delete(pending, path)
				if !isRegularFile(path) {
					continue
				}
				select {
				case out <- *domain.NewUploadFile(path):
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// handleFsEvent returns the path to queue for a create or write event.
func handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if isHidden(event.Name) {
		return "", false
	}
	if !isRegularFile(event.Name) {
		return "", false
	}
	return event.Name, true
}

// isHidden reports whether the file name starts with a dot.
// Editors and browsers write partial downloads as dotfiles.
func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
