package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghlookup/internal/domain"
	"github.com/yourusername/ghlookup/internal/ui/theme"
)

// ModeSelector is a horizontal single-choice selector over the lookup modes.
type ModeSelector struct {
	Label    string
	Options  []domain.Mode
	Selected int
	Focused  bool
}

// NewModeSelector creates a selector with mode preselected.
func NewModeSelector(label string, mode domain.Mode) ModeSelector {
	s := ModeSelector{
		Label:   label,
		Options: domain.Modes,
	}
	s.SetMode(mode)
	return s
}

// Next moves to the next option
func (s *ModeSelector) Next() {
	s.Selected = (s.Selected + 1) % len(s.Options)
}

// Previous moves to the previous option
func (s *ModeSelector) Previous() {
	s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
}

// SetMode selects mode. Unknown modes leave the selection unchanged.
func (s *ModeSelector) SetMode(mode domain.Mode) {
	for i, opt := range s.Options {
		if opt == mode {
			s.Selected = i
			return
		}
	}
}

// Mode returns the selected mode
func (s ModeSelector) Mode() domain.Mode {
	if s.Selected >= 0 && s.Selected < len(s.Options) {
		return s.Options[s.Selected]
	}
	return domain.ModeFollowers
}

// View renders the selector
func (s ModeSelector) View() string {
	styles := theme.Global().Styles()
	label := styles.FormLabel.Render(s.Label + ":")

	var options []string
	for i, opt := range s.Options {
		if i == s.Selected {
			options = append(options, styles.OptionSelected.Render(opt.Label()))
		} else {
			options = append(options, styles.OptionNormal.Render(opt.Label()))
		}
	}

	box := styles.FormInput
	if s.Focused {
		box = styles.FormInputFocused
	}
	arrows := lipgloss.NewStyle().Foreground(styles.ColorMuted).Render("◀ ")
	arrowsRight := lipgloss.NewStyle().Foreground(styles.ColorMuted).Render(" ▶")
	selector := box.Render(arrows + strings.Join(options, " ") + arrowsRight)

	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", selector)
}

// Button represents a clickable button
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button
func (b Button) View() string {
	styles := theme.Global().Styles()
	if b.Focused {
		return styles.FormButton.Render(b.Label)
	}
	return styles.FormButtonInactive.Render(b.Label)
}
