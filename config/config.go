package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"canvasmenu/log"
)

const ConfigFileName = "config.json"

// ItemConfig places one item on the demo canvas.
type ItemConfig struct {
	// Kind is the item kind, e.g. "TextItem", "Special" or "Circle".
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// LogSettings mirrors the logging options that can be set from the config file.
type LogSettings struct {
	Enabled  bool   `json:"enabled"`
	Dir      string `json:"dir,omitempty"`
	MaxSize  int    `json:"max_size_mb"`
	MaxFiles int    `json:"max_files"`
	MaxAge   int    `json:"max_age_days"`
	Compress bool   `json:"compress"`
}

// Config represents the application configuration
type Config struct {
	// MenuMinWidth is the minimum inner width of a context menu, in cells.
	MenuMinWidth int `json:"menu_min_width"`
	// NoticeTimeoutMs is how long a notification stays in the notice bar.
	NoticeTimeoutMs int `json:"notice_timeout_ms"`
	// ShowDisabledEntries renders disabled entries dimmed. When false they are
	// left out of the rendered menu. Disabled entries can never be triggered.
	ShowDisabledEntries bool `json:"show_disabled_entries"`
	// Items overrides the demo canvas layout when non-empty.
	Items []ItemConfig `json:"items,omitempty"`
	// Logs configures log output.
	Logs LogSettings `json:"logs"`
}

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".canvasmenu"), nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MenuMinWidth:        16,
		NoticeTimeoutMs:     3000,
		ShowDisabledEntries: true,
		Logs: LogSettings{
			Enabled:  true,
			MaxSize:  10,
			MaxFiles: 5,
			MaxAge:   30,
			Compress: true,
		},
	}
}

// LogConfig converts the log settings for the log package.
func (c *Config) LogConfig() *log.LogConfig {
	return &log.LogConfig{
		LogsEnabled: c.Logs.Enabled,
		LogsDir:     c.Logs.Dir,
		LogMaxSize:  c.Logs.MaxSize,
		LogMaxFiles: c.Logs.MaxFiles,
		LogMaxAge:   c.Logs.MaxAge,
		LogCompress: c.Logs.Compress,
	}
}

// LoadConfig loads the configuration from disk. If it cannot be done, we return the default configuration.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	cfg, err := loadConfigFrom(filepath.Join(configDir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}
		log.WarningLog.Printf("failed to load config: %v", err)
		return DefaultConfig()
	}
	return cfg
}

// loadConfigFrom reads a config file, filling unset fields from the defaults.
func loadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.MenuMinWidth <= 0 {
		cfg.MenuMinWidth = DefaultConfig().MenuMinWidth
	}
	if cfg.NoticeTimeoutMs <= 0 {
		cfg.NoticeTimeoutMs = DefaultConfig().NoticeTimeoutMs
	}
	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return saveConfigTo(configDir, config)
}

func saveConfigTo(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0644)
}
