package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghlookup/internal/ui/theme"
)

const logoASCII = `
   ██████╗ ██╗  ██╗    ██╗      ██████╗  ██████╗ ██╗  ██╗██╗   ██╗██████╗
  ██╔════╝ ██║  ██║    ██║     ██╔═══██╗██╔═══██╗██║ ██╔╝██║   ██║██╔══██╗
  ██║  ███╗███████║    ██║     ██║   ██║██║   ██║█████╔╝ ██║   ██║██████╔╝
  ██║   ██║██╔══██║    ██║     ██║   ██║██║   ██║██╔═██╗ ██║   ██║██╔═══╝
  ╚██████╔╝██║  ██║    ███████╗╚██████╔╝╚██████╔╝██║  ██╗╚██████╔╝██║
   ╚═════╝ ╚═╝  ╚═╝    ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═╝`

// logoMinWidth is the narrowest terminal that fits the ASCII logo.
const logoMinWidth = 76

// RenderLogo renders the header logo, falling back to the compact form on
// narrow terminals. subtitle is optional.
func RenderLogo(width int, subtitle string) string {
	styles := theme.Global().Styles()

	var logo string
	if width > 0 && width < logoMinWidth {
		logo = RenderLogoCompact()
	} else {
		logo = lipgloss.NewStyle().Foreground(styles.ColorPrimary).Render(logoASCII)
	}

	if subtitle != "" {
		mutedStyle := lipgloss.NewStyle().Foreground(styles.ColorMuted).Italic(true)
		return logo + "\n" + mutedStyle.Render(subtitle)
	}

	return logo
}

// RenderLogoCompact renders a compact version for limited space
func RenderLogoCompact() string {
	styles := theme.Global().Styles()
	return lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary).Render("[ GH LOOKUP ]")
}

// RenderHeader renders a consistent header with title and optional subtitle
func RenderHeader(title, subtitle string) string {
	styles := theme.Global().Styles()

	header := lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary).Render(title)
	if subtitle != "" {
		header += "\n" + lipgloss.NewStyle().Foreground(styles.ColorMuted).Render(subtitle)
	}

	return header
}
