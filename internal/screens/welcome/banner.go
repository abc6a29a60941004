package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quitcheck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗██╗████████╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
██╔═══██╗██║   ██║██║╚══██╔══╝██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
██║   ██║██║   ██║██║   ██║   ██║     ███████║█████╗  ██║     █████╔╝
██║▄▄ ██║██║   ██║██║   ██║   ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
╚██████╔╝╚██████╔╝██║   ██║   ╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "Q U I T C H E C K"

// RenderBanner returns the QUITCHECK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 74 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
