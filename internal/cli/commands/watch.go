package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/rasterizer"
	"github.com/gogpu/rasterizer/internal/cli/config"
)

// debounce collapses bursts of events, such as an editor's
// write-rename-chmod sequence, into one re-render.
const debounce = 100 * time.Millisecond

// watchTargets lists the files whose changes trigger a re-render: the
// mesh and the configuration file. With neither, the working directory
// is watched for a rasterizer.yaml appearing.
func watchTargets(cfg *config.Config) []string {
	var targets []string
	if cfg.Mesh != "" {
		targets = append(targets, cfg.Mesh)
	}
	if cfg.File != "" {
		targets = append(targets, cfg.File)
	} else {
		targets = append(targets, config.FileNames...)
	}
	return targets
}

// watch calls render after any of the target files changes, until ctx is
// done. Parent directories are watched rather than the files themselves
// so that atomic replacements are seen. Render errors are logged and
// watching continues. When render returns a non-nil target list, such as
// after a configuration reload that names a different mesh, the watched
// set is replaced by it.
func watch(ctx context.Context, targets []string, render func() ([]string, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	wanted, err := track(watcher, targets)
	if err != nil {
		return err
	}

	log := rasterizer.Logger()
	log.Info("watching for changes", "files", targets)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !wanted[filepath.Clean(event.Name)] {
				continue
			}
			log.Debug("change detected", "file", event.Name, "op", event.Op.String())
			pending = time.After(debounce)

		case <-pending:
			pending = nil
			next, err := render()
			if err != nil {
				log.Error("re-render failed", "err", err)
			}
			if next == nil || slices.Equal(next, targets) {
				continue
			}
			w, err := track(watcher, next)
			if err != nil {
				log.Warn("keeping previous watch targets", "err", err)
				continue
			}
			wanted, targets = w, next
			log.Info("watching for changes", "files", targets)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)
		}
	}
}

// track points watcher at the parent directories of targets, dropping
// directories no longer needed, and returns the set of absolute target
// paths to match events against.
func track(watcher *fsnotify.Watcher, targets []string) (map[string]bool, error) {
	wanted := make(map[string]bool, len(targets))
	dirs := make(map[string]bool)
	for _, t := range targets {
		abs, err := filepath.Abs(t)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", t, err)
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	for _, dir := range watcher.WatchList() {
		if !dirs[dir] {
			_ = watcher.Remove(dir)
		}
	}
	return wanted, nil
}
