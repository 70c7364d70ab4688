package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the global configuration whenever the config file changes.
// It returns a stop function that shuts the watcher down. Watching a config
// directory that doesn't exist is not an error; the watcher is simply not
// started.
func Watch() (func(), error) {
	cfg := Get()
	dir := filepath.Dir(cfg.ConfigFilePath())
	if _, err := os.Stat(dir); err != nil {
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file. Config management tools replace
	// the file atomically, which drops a file-level watch.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != cfg.ConfigFilePath() {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := Reload(); err != nil {
					log.Printf("config: reload failed: %v", err)
					continue
				}
				if err := Get().Validate(); err != nil {
					log.Printf("config: reloaded config is invalid: %v", err)
					continue
				}
				log.Printf("config: reloaded from %s", cfg.ConfigFilePath())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config: watcher error: %v", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		_ = watcher.Close()
	}, nil
}
