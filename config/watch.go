package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"canvasmenu/debounce"
	"canvasmenu/log"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay lets editors finish writing before the file is read.
const reloadDelay = 200 * time.Millisecond

// Watch calls onChange with the reloaded config each time the config file changes.
// Files that fail to parse are logged and skipped. It blocks until ctx is done.
func Watch(ctx context.Context, onChange func(*Config)) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return watchDir(ctx, configDir, reloadDelay, onChange)
}

func watchDir(ctx context.Context, configDir string, delay time.Duration, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	// Watch the directory itself so a file replaced by rename is still seen.
	if err := watcher.Add(configDir); err != nil {
		return fmt.Errorf("failed to add config directory to watcher: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	reload := debounce.New(delay)
	defer reload.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != configPath || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			reload.Trigger(func() {
				cfg, err := loadConfigFrom(configPath)
				if err != nil {
					log.WarningLog.Printf("ignoring config change: %v", err)
					return
				}
				log.InfoLog.Printf("config reloaded from %s", configPath)
				onChange(cfg)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.ErrorLog.Printf("config watcher error: %v", err)
		}
	}
}
