package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghlookup/internal/ui/theme"
)

// Shortcut represents a keyboard shortcut
type Shortcut struct {
	Key         string
	Description string
}

// Footer represents a footer component
type Footer struct {
	Shortcuts []Shortcut
	Metadata  string // Optional metadata to display on the right
	Width     int
}

// NewFooter creates a new footer
func NewFooter(shortcuts []Shortcut) *Footer {
	return &Footer{
		Shortcuts: shortcuts,
	}
}

// WithMetadata adds metadata to the footer
func (f *Footer) WithMetadata(metadata string) *Footer {
	f.Metadata = metadata
	return f
}

// WithWidth sets the footer width
func (f *Footer) WithWidth(width int) *Footer {
	f.Width = width
	return f
}

// Render renders the footer
func (f *Footer) Render() string {
	styles := theme.Global().Styles()

	var parts []string
	for _, shortcut := range f.Shortcuts {
		key := styles.ShortcutKey.Render(shortcut.Key)
		desc := styles.ShortcutDesc.Render(shortcut.Description)
		parts = append(parts, key+" "+desc)
	}

	shortcuts := strings.Join(parts, " • ")

	if f.Metadata == "" {
		return shortcuts
	}

	meta := styles.ShortcutDesc.Italic(true).Render(f.Metadata)
	if f.Width > 0 {
		spacing := f.Width - lipgloss.Width(shortcuts) - lipgloss.Width(meta)
		if spacing > 0 {
			return shortcuts + strings.Repeat(" ", spacing) + meta
		}
	}
	return shortcuts + " " + meta
}

// Common footer shortcuts for reuse
var (
	ShortcutQuit = Shortcut{
		Key:         "esc",
		Description: "quit",
	}
	ShortcutFocus = Shortcut{
		Key:         "tab",
		Description: "next field",
	}
	ShortcutMode = Shortcut{
		Key:         "←→/hl",
		Description: "mode",
	}
	ShortcutSearch = Shortcut{
		Key:         "enter",
		Description: "search",
	}
	ShortcutDismiss = Shortcut{
		Key:         "any key",
		Description: "dismiss",
	}
)

// LookupFooter creates the footer for the lookup form.
// The mode shortcut is only listed while the selector has focus.
func LookupFooter(selectorFocused, noticeShown bool, metadata string, width int) string {
	var shortcuts []Shortcut
	switch {
	case noticeShown:
		shortcuts = []Shortcut{ShortcutDismiss}
	case selectorFocused:
		shortcuts = []Shortcut{ShortcutMode, ShortcutFocus, ShortcutQuit}
	default:
		shortcuts = []Shortcut{ShortcutSearch, ShortcutFocus, ShortcutQuit}
	}

	return NewFooter(shortcuts).WithMetadata(metadata).WithWidth(width).Render()
}
