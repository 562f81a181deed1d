package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config stores all application configuration
type Config struct {
	// Name shown in the dashboard greeting
	UserName string `mapstructure:"user_name" json:"user_name"`
	// SQLite file holding room state; empty means the default location
	DatabasePath string `mapstructure:"database_path" json:"database_path,omitempty"`
	// Log destination; logging is disabled when empty
	LogFile  string `mapstructure:"log_file" json:"log_file,omitempty"`
	LogLevel string `mapstructure:"log_level" json:"log_level,omitempty"`
	// ID of the last room opened on the details screen
	LastRoomID string `mapstructure:"last_room_id" json:"last_room_id,omitempty"`
	// How long notification banners stay up
	NotificationTTLSeconds int `mapstructure:"notification_ttl_seconds" json:"notification_ttl_seconds"`
	// Demo device feed tuning
	DemoFeedIntervalSeconds int `mapstructure:"demo_feed_interval_seconds" json:"demo_feed_interval_seconds"`
	DemoFaultPercent        int `mapstructure:"demo_fault_percent" json:"demo_fault_percent"`

	path string
}

var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "SMARTROOM"

// configDir returns the configuration directory path
func configDir() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "smartroom"), nil
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "smartroom"), nil
}

// DefaultPath returns the full path to the default config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel:                "info",
		NotificationTTLSeconds:  5,
		DemoFeedIntervalSeconds: 20,
		DemoFaultPercent:        25,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("user_name", d.UserName)
	v.SetDefault("database_path", d.DatabasePath)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("last_room_id", d.LastRoomID)
	v.SetDefault("notification_ttl_seconds", d.NotificationTTLSeconds)
	v.SetDefault("demo_feed_interval_seconds", d.DemoFeedIntervalSeconds)
	v.SetDefault("demo_fault_percent", d.DemoFaultPercent)
}

// Load reads the configuration from the default location
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file yields the
// defaults. SMARTROOM_* environment variables override file values.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, new(viper.ConfigFileNotFoundError)) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.path = path

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.NotificationTTLSeconds <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("notification_ttl_seconds must be positive"))
	}
	if c.DemoFeedIntervalSeconds <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("demo_feed_interval_seconds must be positive"))
	}
	if c.DemoFaultPercent < 0 || c.DemoFaultPercent > 100 {
		return errors.Join(ErrInvalidConfig, errors.New("demo_fault_percent must be within 0-100"))
	}
	return nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to disk
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	c.path = path
	return nil
}

// SaveLastRoomID records id as the last opened room. Only that key is
// written; every other value in the file stays as it is on disk, so
// per-run flag and environment overrides held in c are never persisted.
func (c *Config) SaveLastRoomID(id string) error {
	c.LastRoomID = id

	path := c.path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	stored := make(map[string]any)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(data) > 0 {
			if err := json.Unmarshal(data, &stored); err != nil {
				return err
			}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if id == "" {
		delete(stored, "last_room_id")
	} else {
		stored["last_room_id"] = id
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	out, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return err
	}
	c.path = path
	return nil
}

// DatabaseFile returns the room database location
func (c *Config) DatabaseFile() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rooms.db"), nil
}

// NotificationTTL returns how long banners stay visible
func (c *Config) NotificationTTL() time.Duration {
	return time.Duration(c.NotificationTTLSeconds) * time.Second
}

// DemoFeedInterval returns the demo device feed tick
func (c *Config) DemoFeedInterval() time.Duration {
	return time.Duration(c.DemoFeedIntervalSeconds) * time.Second
}
