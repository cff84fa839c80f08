package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghlookup/internal/ui/layout"
	"github.com/yourusername/ghlookup/internal/ui/theme"
)

// ModalType defines the type of modal
type ModalType int

const (
	ModalInfo ModalType = iota
	ModalError
)

// Modal is a blocking notice drawn over the form.
type Modal struct {
	Type    ModalType
	Title   string
	Message string
	Width   int
	Height  int
}

// NewModal creates a new modal with default settings
func NewModal(modalType ModalType, title, message string) *Modal {
	return &Modal{
		Type:    modalType,
		Title:   title,
		Message: message,
		Width:   layout.ModalWidthSM,
		Height:  layout.ModalHeightSM,
	}
}

// NewErrorModal creates an error notice modal
func NewErrorModal(message string) *Modal {
	return NewModal(ModalError, "ERROR", message)
}

// Render renders the modal
func (m *Modal) Render() string {
	styles := theme.Global().Styles()
	current := theme.Global().Current()

	var content strings.Builder

	titleStyle := styles.StatusInfo
	titleIcon := "ℹ "
	if m.Type == ModalError {
		titleStyle = styles.StatusError
		titleIcon = "✗ "
	}
	content.WriteString(titleStyle.Render(titleIcon+m.Title) + "\n\n")

	messageStyle := lipgloss.NewStyle().Foreground(styles.ColorText)
	content.WriteString(messageStyle.Render(m.Message))
	content.WriteString("\n\n")

	mutedStyle := lipgloss.NewStyle().Foreground(styles.ColorMuted)
	content.WriteString(mutedStyle.Render("Press any key to dismiss"))

	modalStyle := lipgloss.NewStyle().
		Width(m.Width).
		Padding(1, layout.SpacingSM).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorBorder)

	switch m.Type {
	case ModalError:
		modalStyle = modalStyle.
			BorderForeground(styles.ColorError).
			Background(lipgloss.Color(current.Backgrounds.ErrorModal))
	default:
		modalStyle = modalStyle.Background(lipgloss.Color(current.Backgrounds.Modal))
	}

	return modalStyle.Render(content.String())
}

// RenderCentered renders the modal centered on screen
func (m *Modal) RenderCentered(windowWidth, windowHeight int) string {
	modalContent := m.Render()
	if windowWidth <= 0 || windowHeight <= 0 {
		return modalContent
	}

	x := layout.CenterHorizontal(windowWidth, lipgloss.Width(modalContent))
	y := layout.CenterVertical(windowHeight, lipgloss.Height(modalContent))

	overlay := lipgloss.NewStyle().
		Width(windowWidth).
		Height(windowHeight).
		Padding(y, 0, 0, x)

	return overlay.Render(modalContent)
}
