package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quitcheck/internal/ui/theme"
	"github.com/abhisek/quitcheck/internal/variant"
)

// Block-letter title (same art as welcome/banner.go).
const titleFull = ` ██████╗ ██╗   ██╗██╗████████╗
██╔═══██╗██║   ██║██║╚══██╔══╝
██║   ██║██║   ██║██║   ██║
██║▄▄ ██║██║   ██║██║   ██║
╚██████╔╝╚██████╔╝██║   ██║
 ╚══▀▀═╝  ╚═════╝ ╚═╝   ╚═╝   check`

const titleCompact = "Q U I T · C H E C K"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines when the terminal is short.
func renderMenu(items []string, selected int, cw int, compact bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		switch {
		case compact && i == selected:
			buttons = append(buttons, theme.Selected.Render("▸ "+label))
		case compact:
			buttons = append(buttons, theme.Unselected.Render("  "+label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderTagline shows what the highlighted variant is about.
func renderTagline(v *variant.Variant, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(v.Tagline)
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render(msg)
}
