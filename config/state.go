package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"canvasmenu/log"

	"github.com/gofrs/flock"
)

const StateFileName = "state.json"

// AppState handles application-level state
type AppState interface {
	// GetHelpScreensSeen returns the bitmask of seen help screens
	GetHelpScreensSeen() uint32
	// SetHelpScreensSeen updates the bitmask of seen help screens
	SetHelpScreensSeen(seen uint32) error
}

// UIState represents UI preferences that persist between runs
type UIState struct {
	// CursorX and CursorY hold the last canvas cursor position
	CursorX int `json:"cursor_x"`
	CursorY int `json:"cursor_y"`
}

// State represents the application state that persists between runs
type State struct {
	// HelpScreensSeen is a bitmask tracking which help screens have been shown
	HelpScreensSeen uint32 `json:"help_screens_seen"`
	// UI stores the UI preferences and state
	UI UIState `json:"ui"`

	dir         string
	lockFile    *flock.Flock
	lockTimeout time.Duration
}

const (
	// DefaultLockTimeout is the default timeout for acquiring locks
	DefaultLockTimeout = 5 * time.Second
	// LockFileName is the name of the lock file
	LockFileName = "state.lock"
)

// DefaultState returns the default state stored in the config directory
func DefaultState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		// Return a minimal state without locking if we can't get the config dir
		return &State{}
	}
	return newStateIn(configDir)
}

// newStateIn returns a default state backed by files in dir.
func newStateIn(dir string) *State {
	return &State{
		dir:         dir,
		lockFile:    flock.New(filepath.Join(dir, LockFileName)),
		lockTimeout: DefaultLockTimeout,
	}
}

// LoadState loads the state from disk with locking. If it cannot be done, we return the default state.
func LoadState() *State {
	state := DefaultState()
	if err := state.loadFromDisk(); err != nil {
		log.WarningLog.Printf("failed to load state from disk: %v", err)
	}
	return state
}

// loadFromDisk loads state from disk with a shared read lock
func (s *State) loadFromDisk() error {
	if s.dir == "" {
		return nil
	}
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, loading state without locking")
		return s.loadFromDiskWithoutLocking()
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := s.lockFile.TryRLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire read lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire read lock within timeout")
	}
	defer s.lockFile.Unlock()

	return s.loadFromDiskWithoutLocking()
}

func (s *State) loadFromDiskWithoutLocking() error {
	data, err := os.ReadFile(filepath.Join(s.dir, StateFileName))
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - keep the default state
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var newState State
	if err := json.Unmarshal(data, &newState); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	// Update our fields but keep the lock file and timeout
	s.HelpScreensSeen = newState.HelpScreensSeen
	s.UI = newState.UI
	return nil
}

// SaveState saves the state to disk with locking
func SaveState(state *State) error {
	return state.saveToDisk()
}

// saveToDisk saves state to disk with an exclusive write lock
func (s *State) saveToDisk() error {
	if s.dir == "" {
		return fmt.Errorf("state has no backing directory")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if s.lockFile == nil {
		log.WarningLog.Printf("lock file not initialized, saving state without locking")
		return s.saveToDiskWithoutLocking()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := s.lockFile.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire write lock within timeout")
	}
	defer s.lockFile.Unlock()

	return s.saveToDiskWithoutLocking()
}

func (s *State) saveToDiskWithoutLocking() error {
	statePath := filepath.Join(s.dir, StateFileName)
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Write to a temporary file first to ensure atomicity
	tmpPath := statePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}

	if err := os.Rename(tmpPath, statePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update state file: %w", err)
	}

	return nil
}

// GetHelpScreensSeen returns the bitmask of seen help screens
func (s *State) GetHelpScreensSeen() uint32 {
	return s.HelpScreensSeen
}

// SetHelpScreensSeen updates the bitmask of seen help screens
func (s *State) SetHelpScreensSeen(seen uint32) error {
	s.HelpScreensSeen = seen
	return SaveState(s)
}

// RefreshState reloads state from disk with locking
func (s *State) RefreshState() error {
	return s.loadFromDisk()
}

// Close releases any locks held by this state
func (s *State) Close() error {
	if s.lockFile != nil {
		return s.lockFile.Unlock()
	}
	return nil
}

// SetCursor records the canvas cursor position
func (s *State) SetCursor(x, y int) error {
	s.UI.CursorX = x
	s.UI.CursorY = y
	return SaveState(s)
}

// GetCursor returns the last saved canvas cursor position
func (s *State) GetCursor() (int, int) {
	return s.UI.CursorX, s.UI.CursorY
}
