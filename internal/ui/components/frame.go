package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quitcheck/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all boxed sections
// so they line up inside the frame.
func ContentWidth(frameWidth int) int {
	// frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border frame, centered both ways
// within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// ScoreCard renders one section tile: name on top, score over max below.
// Highlighted tiles get the alert border and score color.
func ScoreCard(name string, score, max int, highlight bool, width int) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	box := theme.ScoreCard
	if highlight {
		scoreStyle = scoreStyle.Foreground(theme.Error)
		box = theme.ScoreCardHigh
	}

	body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(name) + "\n" +
		scoreStyle.Render(fmt.Sprintf("%d", score)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" / %d", max))

	return box.Width(width).Align(lipgloss.Center).Render(body)
}
