// Package theme holds the TUI theme presets and the lipgloss styles derived from them.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghlookup/internal/domain"
)

// Manager manages the current theme and provides styled components.
type Manager struct {
	current domain.Theme
	styles  *Styles
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	// Color values (as lipgloss.Color)
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorError     lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorText      lipgloss.Color

	// Card title
	SectionTitle lipgloss.Style

	// Mode selector
	OptionSelected lipgloss.Style
	OptionNormal   lipgloss.Style

	// Result area
	ResultBox   lipgloss.Style
	ResultLabel lipgloss.Style
	ResultValue lipgloss.Style
	Loading     lipgloss.Style

	// Status indicator styles
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style

	// Footer styles
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// Form component styles
	FormLabel          lipgloss.Style
	FormInput          lipgloss.Style
	FormInputFocused   lipgloss.Style
	FormButton         lipgloss.Style
	FormButtonInactive lipgloss.Style
}

// NewManager creates a new theme manager with the specified theme.
func NewManager(t domain.Theme) *Manager {
	m := &Manager{
		current: t,
		styles:  &Styles{},
	}
	m.regenerateStyles()
	return m
}

// Current returns the current theme.
func (m *Manager) Current() domain.Theme {
	return m.current
}

// SetTheme changes the current theme and regenerates all styles.
func (m *Manager) SetTheme(t domain.Theme) {
	m.current = t
	m.regenerateStyles()
}

// Styles returns the current theme styles.
func (m *Manager) Styles() *Styles {
	return m.styles
}

// regenerateStyles rebuilds all lipgloss styles based on the current theme.
func (m *Manager) regenerateStyles() {
	c := m.current.Colors
	bg := m.current.Backgrounds

	colorPrimary := lipgloss.Color(c.Primary)
	colorSecondary := lipgloss.Color(c.Secondary)
	colorSuccess := lipgloss.Color(c.Success)
	colorWarning := lipgloss.Color(c.Warning)
	colorError := lipgloss.Color(c.Error)
	colorMuted := lipgloss.Color(c.Muted)
	colorBorder := lipgloss.Color(c.Border)
	colorText := lipgloss.Color(c.Text)

	s := m.styles
	s.ColorPrimary = colorPrimary
	s.ColorSecondary = colorSecondary
	s.ColorSuccess = colorSuccess
	s.ColorWarning = colorWarning
	s.ColorError = colorError
	s.ColorMuted = colorMuted
	s.ColorBorder = colorBorder
	s.ColorText = colorText

	s.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary).
		MarginTop(1)

	s.OptionSelected = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorPrimary).
		Bold(true).
		Padding(0, 1)

	s.OptionNormal = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 1)

	s.ResultBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginTop(1)

	s.ResultLabel = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.ResultValue = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	s.Loading = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.StatusError = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	s.StatusInfo = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder)

	s.ShortcutKey = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.ShortcutDesc = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.FormLabel = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true).
		Width(8)

	s.FormInput = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.FormInput)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	s.FormInputFocused = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.FormFocused)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1)

	s.FormButton = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorPrimary).
		Padding(0, 2).
		Bold(true)

	s.FormButtonInactive = lipgloss.NewStyle().
		Foreground(colorMuted).
		Background(lipgloss.Color(bg.FormInput)).
		Padding(0, 2)
}

// global is the process-wide theme manager used by the UI components.
var global = NewManager(ClaudeWarm)

// SetGlobal selects the theme used by all UI components.
// Unknown names fall back to the default theme.
func SetGlobal(name string) {
	global.SetTheme(ByName(name))
}

// Global returns the process-wide theme manager.
func Global() *Manager {
	return global
}
