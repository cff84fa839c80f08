package domain

import (
	"fmt"
	"regexp"
)

// Theme represents a visual theme for the TUI.
type Theme struct {
	Name        string
	Description string
	Colors      ThemeColors
	Backgrounds ThemeBackgrounds
}

// ThemeColors defines the primary color palette for a theme.
type ThemeColors struct {
	// Primary accent color (used for selected elements, borders, etc.)
	Primary string

	// Secondary accent color (darker shade of primary)
	Secondary string

	// Success indicator color (rendered result values)
	Success string

	// Warning indicator color (amber/orange tones)
	Warning string

	// Error indicator color (notices)
	Error string

	// Muted text color (placeholders, help)
	Muted string

	// Border color for UI elements
	Border string

	// Main text color
	Text string
}

// ThemeBackgrounds defines background colors for various UI elements.
type ThemeBackgrounds struct {
	FormInput   string
	FormFocused string
	Modal       string
	ErrorModal  string
}

// hexColorRegex matches valid hex color codes (#RGB or #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Validate checks if the theme has valid color values.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}

	colors := map[string]string{
		"Primary":     t.Colors.Primary,
		"Secondary":   t.Colors.Secondary,
		"Success":     t.Colors.Success,
		"Warning":     t.Colors.Warning,
		"Error":       t.Colors.Error,
		"Muted":       t.Colors.Muted,
		"Border":      t.Colors.Border,
		"Text":        t.Colors.Text,
		"FormInput":   t.Backgrounds.FormInput,
		"FormFocused": t.Backgrounds.FormFocused,
		"Modal":       t.Backgrounds.Modal,
		"ErrorModal":  t.Backgrounds.ErrorModal,
	}

	for name, color := range colors {
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("invalid hex color for %s: %s", name, color)
		}
	}

	return nil
}
