package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIBaseURL is the root of the public GitHub REST API.
const DefaultAPIBaseURL = "https://api.github.com/"

// Config represents the complete ghlookup configuration
type Config struct {
	API APIConfig `mapstructure:"api"`
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig holds the REST endpoint settings
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// UIConfig holds UI/theme settings
type UIConfig struct {
	Theme       string `mapstructure:"theme"`        // Theme name (e.g., "claude-warm", "ocean-blue")
	DefaultMode string `mapstructure:"default_mode"` // Mode selected at startup
	Timezone    string `mapstructure:"timezone"`     // IANA name or "Local"
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // Empty means the default log path
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
		},
		UI: UIConfig{
			Theme:       "claude-warm",
			DefaultMode: string(ModeFollowers),
			Timezone:    "Local",
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate API config
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}

	// Validate UI config
	if _, err := ParseMode(c.UI.DefaultMode); err != nil {
		return fmt.Errorf("ui.default_mode: %w", err)
	}
	if c.UI.Theme == "" {
		return fmt.Errorf("ui.theme cannot be empty")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("ui.timezone: %w", err)
	}

	// Validate log config
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}

	return nil
}

// Mode returns the configured startup mode, falling back to followers.
func (c *Config) Mode() Mode {
	m, err := ParseMode(c.UI.DefaultMode)
	if err != nil {
		return ModeFollowers
	}
	return m
}

// Location resolves the configured timezone used for date rendering.
func (c *Config) Location() (*time.Location, error) {
	if c.UI.Timezone == "" || c.UI.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.UI.Timezone)
}

// APIBaseURL returns the base URL with the trailing slash go-github requires.
func (c *Config) APIBaseURL() string {
	if strings.HasSuffix(c.API.BaseURL, "/") {
		return c.API.BaseURL
	}
	return c.API.BaseURL + "/"
}
