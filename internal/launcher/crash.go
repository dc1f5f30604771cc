// /internal/launcher/crash.go
package launcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"forge-launcher/internal/log"
	"forge-launcher/internal/util"

	"github.com/fsnotify/fsnotify"
)

// WatchCrashReports calls onReport once for every crash report that appears
// in dir until ctx is done. dir is created if needed. The watcher runs in
// its own goroutine; the returned channel is closed when it has stopped.
func WatchCrashReports(ctx context.Context, dir string, onReport func(path string)) (<-chan struct{}, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create crash report directory: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create filesystem watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}
	log.Log.Info("Watching %s for crash reports.", dir)

	stopped := make(chan struct{})
	seen := map[string]bool{}

	go func() {
		defer close(stopped)
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if !isCrashReport(event.Name) {
					continue
				}
				if !seen[event.Name] {
					seen[event.Name] = true
					log.Log.Warn("Crash report detected: %s", filepath.Base(event.Name))
					onReport(event.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Log.Warn("Watcher error: %v", err)
			case <-ctx.Done():
				return
			}
		}
	}()
	return stopped, nil
}

func isCrashReport(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, "crash-") && strings.HasSuffix(name, ".txt")
}

// MonitorCrashes watches dir for as long as the session's game runs.
func (s *Session) MonitorCrashes(dir string, onReport func(path string)) error {
	ctx, cancel := context.WithCancel(context.Background())
	stopped, err := WatchCrashReports(ctx, dir, onReport)
	if err != nil {
		cancel()
		return err
	}
	go func() {
		<-s.done
		cancel()
		<-stopped
	}()
	return nil
}
