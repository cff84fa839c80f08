// Package config loads and persists the ghlookup configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/yourusername/ghlookup/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g. GHLOOKUP_API_BASE_URL.
const EnvPrefix = "GHLOOKUP"

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a new config manager. An empty path selects
// <user config dir>/ghlookup/config.yaml.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		path = filepath.Join(dir, "ghlookup", "config.yaml")
	}

	return &Manager{
		configPath: path,
	}, nil
}

// newViper builds a viper instance with defaults, file and env sources wired.
func (m *Manager) newViper() *viper.Viper {
	v := viper.New()

	defaults := domain.NewDefaultConfig()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.default_mode", defaults.UI.DefaultMode)
	v.SetDefault("ui.timezone", defaults.UI.Timezone)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetConfigFile(m.configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads the configuration. Precedence is env, then file, then defaults.
// A missing file is not an error.
func (m *Manager) Load() (*domain.Config, error) {
	v := m.newViper()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &domain.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", m.configPath, err)
	}

	return cfg, nil
}

// Save saves the configuration to disk as YAML.
func (m *Manager) Save(cfg *domain.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid configuration: %w", err)
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.default_mode", cfg.UI.DefaultMode)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Exists reports whether the config file is present on disk.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.configPath)
	return err == nil
}

// ConfigPath returns the path to the config file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
