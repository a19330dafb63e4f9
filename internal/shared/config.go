package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

//go:embed config.example.toml
var exampleConf []byte

const appName = "spotui"

// Storage drivers understood by [StorageConfig.Driver].
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Navigation NavigationConfig `toml:"navigation"`
	Log        LogConfig        `toml:"log"`
}

// StorageConfig selects the key-value backend and namespaces its keys.
type StorageConfig struct {
	Driver    string `toml:"driver"`
	KeyPrefix string `toml:"key_prefix"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// RedisConfig contains the connection URL for the redis driver.
type RedisConfig struct {
	URL string `toml:"url"`
}

// NavigationConfig tunes the navigation restore hint.
type NavigationConfig struct {
	TTL string `toml:"ttl"` // Go duration string, e.g. "24h"
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // TUI log destination
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, os.ErrExist)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks driver names, durations and log levels.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Driver) {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Storage.Driver)
	}

	if strings.EqualFold(c.Storage.Driver, DriverRedis) && c.Redis.URL == "" {
		return fmt.Errorf("%w: redis.url is required for the redis driver", ErrInvalidConfig)
	}

	if _, err := c.NavigationTTL(); err != nil {
		return err
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// NavigationTTL parses [NavigationConfig.TTL]. An empty value yields zero, meaning "use the default".
func (c *Config) NavigationTTL() (time.Duration, error) {
	if c.Navigation.TTL == "" {
		return 0, nil
	}

	ttl, err := time.ParseDuration(c.Navigation.TTL)
	if err != nil || ttl <= 0 {
		return 0, fmt.Errorf("%w: navigation.ttl %q", ErrInvalidConfig, c.Navigation.TTL)
	}
	return ttl, nil
}

// DatabasePath returns the configured SQLite path, falling back to $XDG_DATA_HOME/spotui/spotui.db.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}

// LogPath returns the configured TUI log file, falling back to $XDG_STATE_HOME/spotui/spotui.log.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// DefaultConfigPath returns ./config.toml when present, otherwise $XDG_CONFIG_HOME/spotui/config.toml.
func DefaultConfigPath() string {
	if _, err := os.Stat("config.toml"); err == nil {
		return "config.toml"
	}
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}
