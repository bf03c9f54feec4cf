// Package config loads the twelveweeks configuration from
// ~/.twelveweeks/config.yaml, falling back to defaults when the file is
// missing. All fields are optional.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"twelveweeks/internal/storage"
)

// Config is the full twelveweeks configuration.
type Config struct {
	// Storage selects the persistence backend.
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Timezone is the civil timezone used to resolve "today".
	Timezone string `yaml:"timezone" mapstructure:"timezone"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Engine is "json" or "sqlite".
	Engine string `yaml:"engine" mapstructure:"engine"`
	// Path overrides the data file location; empty means the default
	// under ~/.twelveweeks.
	Path string `yaml:"path" mapstructure:"path"`
}

// DefaultConfig returns the defaults: JSON storage under ~/.twelveweeks and
// the Pacific timezone the original scoreboard rendered in.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Engine: storage.EngineJSON,
		},
		Timezone: "America/Los_Angeles",
	}
}

// Load reads the config file if present, otherwise returns defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(home, ".twelveweeks", "config.yaml")
	if err := loadFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(cfg)
}

// StorePath resolves the data file path for the configured engine.
func (c *Config) StorePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := storage.DefaultDataDir()
	if err != nil {
		return "", err
	}
	name := "scoreboard.json"
	if c.Storage.Engine == storage.EngineSQLite {
		name = "scoreboard.db"
	}
	return filepath.Join(dir, name), nil
}
