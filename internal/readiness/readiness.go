// Package readiness watches for the instance socket to appear after a
// spawn. It is a diagnostic aid: a fresh instance binds its socket
// within moments of starting, so "spawned but no socket" usually means
// the instance crashed during startup. That is worth a warning even
// though the spawn itself already succeeded.
package readiness

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// WaitForSocket blocks until socketPath exists or timeout passes.
// The watch covers the socket's parent directory, which must already
// exist; the instance creates the socket file itself.
func WaitForSocket(socketPath string, timeout time.Duration, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(socketPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	// The socket may have appeared between the spawn and the watch
	// registration; check once after the watch is armed so the
	// creation event cannot slip through the gap.
	if _, err := os.Stat(socketPath); err == nil {
		log.Debug().Str("socket", socketPath).Msg("instance socket already present")
		return nil
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if event.Name != socketPath {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				log.Debug().Str("socket", socketPath).Msg("instance socket appeared")
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			return fmt.Errorf("watch error: %w", err)
		case <-deadline.C:
			return fmt.Errorf("no socket at %s after %s", socketPath, timeout)
		}
	}
}
