package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghlookup/internal/domain"
	"github.com/yourusername/ghlookup/internal/ui/theme"
)

func prefix(color lipgloss.Color, text string) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(text)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", prefix(theme.Global().Styles().ColorSuccess, "[SUCCESS]"), message)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", prefix(theme.Global().Styles().ColorError, "[ERROR]"), message)
}

// FormatValue highlights a value in output
func FormatValue(value string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Global().Styles().ColorPrimary).
		Bold(true).
		Render(value)
}

// FormatLabel formats a label
func FormatLabel(label string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Global().Styles().ColorMuted).
		Render(label)
}

// PrintResult writes the result as plain "Label: value" lines, the same text
// the result area shows.
func PrintResult(w io.Writer, result *domain.LookupResult) {
	fmt.Fprintln(w, result.Text())
}

// PrintConfig writes the effective configuration.
func PrintConfig(w io.Writer, cfg *domain.Config, path string, fileExists bool) {
	source := path
	if !fileExists {
		source = path + " (not found, using defaults)"
	}
	rows := [][2]string{
		{"config file", source},
		{"api.base_url", cfg.API.BaseURL},
		{"ui.theme", cfg.UI.Theme},
		{"ui.default_mode", cfg.UI.DefaultMode},
		{"ui.timezone", cfg.UI.Timezone},
		{"log.level", cfg.Log.Level},
		{"log.file", cfg.Log.File},
	}
	for _, r := range rows {
		value := r[1]
		if value == "" {
			value = "(default)"
		}
		fmt.Fprintf(w, "%s %s\n", FormatLabel(fmt.Sprintf("%-16s", r[0])), FormatValue(value))
	}
}
