package domain

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "explicit timezone",
			mutate: func(c *Config) { c.UI.Timezone = "UTC" },
		},
		{
			name:        "relative base URL",
			mutate:      func(c *Config) { c.API.BaseURL = "api.github.com" },
			wantErr:     true,
			errContains: "api.base_url",
		},
		{
			name:        "unknown default mode",
			mutate:      func(c *Config) { c.UI.DefaultMode = "stars" },
			wantErr:     true,
			errContains: "ui.default_mode",
		},
		{
			name:        "empty theme",
			mutate:      func(c *Config) { c.UI.Theme = "" },
			wantErr:     true,
			errContains: "ui.theme",
		},
		{
			name:        "unknown timezone",
			mutate:      func(c *Config) { c.UI.Timezone = "Mars/Olympus" },
			wantErr:     true,
			errContains: "ui.timezone",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.Log.Level = "verbose" },
			wantErr:     true,
			errContains: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate() expected error containing %q, got nil", tt.errContains)
				}
				if !contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestConfig_Helpers(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Mode() != ModeFollowers {
		t.Errorf("Mode() = %v, want %v", cfg.Mode(), ModeFollowers)
	}

	cfg.UI.DefaultMode = "garbage"
	if cfg.Mode() != ModeFollowers {
		t.Errorf("Mode() with invalid value = %v, want fallback %v", cfg.Mode(), ModeFollowers)
	}

	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Errorf("Location() = %v, %v; want time.Local", loc, err)
	}

	cfg.API.BaseURL = "http://127.0.0.1:8080"
	if got := cfg.APIBaseURL(); got != "http://127.0.0.1:8080/" {
		t.Errorf("APIBaseURL() = %q", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}

	if _, err := ParseMode("FOLLOWERS"); err == nil {
		t.Error("ParseMode is case-sensitive and should reject FOLLOWERS")
	}
}

func TestMode_Placeholder(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeFollowers, "Enter GitHub Username or Profile URL"},
		{ModeRepoDate, "Enter GitHub Repo URL"},
		{ModeRepoStats, "Enter GitHub Repo URL"},
	}

	for _, tt := range tests {
		if got := tt.mode.Placeholder(); got != tt.want {
			t.Errorf("%v.Placeholder() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
