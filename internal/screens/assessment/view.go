package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quitcheck/internal/navigator"
	"github.com/abhisek/quitcheck/internal/ui/components"
	"github.com/abhisek/quitcheck/internal/ui/theme"
	"github.com/abhisek/quitcheck/internal/variant"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *AssessmentScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := s.ctrl.View()

	var content string
	switch snap.State {
	case navigator.StateWelcome:
		content = s.renderWelcome(cw)
	case navigator.StateQuiz:
		content = s.renderQuiz(snap, cw)
	case navigator.StateAnalyzing:
		content = s.renderAnalyzing()
	case navigator.StateResult:
		content = s.renderResult(snap, cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessmentScreen) renderWelcome(cw int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render(s.variant.Title))
	b.WriteString("\n\n")

	inner := cw - 6
	var intro []string
	if s.variant.Tagline != "" {
		intro = append(intro, theme.Body.Width(inner).Render(s.variant.Tagline))
	}
	info := fmt.Sprintf("%d 道题 · %d 个维度", s.variant.Catalog.Len(), len(s.variant.Catalog.Sections()))
	intro = append(intro, theme.Hint.Render(info))
	b.WriteString(components.Card(strings.Join(intro, "\n\n"), cw))
	b.WriteString("\n\n")

	if s.modalOpen {
		b.WriteString(s.renderModal(cw))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s.startBtn.View()))
	return b.String()
}

func (s *AssessmentScreen) renderModal(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render("请输入访问码"))
	b.WriteString("\n\n")
	b.WriteString(s.code.View())
	if s.codeErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Alert.Render(s.codeErr))
	}

	w := cw - 8
	if w < 24 {
		w = 24
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.Modal.Width(w).Render(b.String()))
}

func (s *AssessmentScreen) renderQuiz(snap navigator.Snapshot, cw int) string {
	q := snap.Question
	if q == nil {
		return ""
	}
	var b strings.Builder

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d", snap.Cursor+1, snap.Total))
	bar := components.NewProgressBar(counter, snap.Progress(), false, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if q.SectionName != "" {
		b.WriteString(theme.Badge.Render(q.SectionName))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Body.Bold(true).Width(cw).Render(fmt.Sprintf("%d. %s", q.ID, q.Text)))
	b.WriteString("\n\n")

	s.syncOptions()
	b.WriteString(s.options.View(cw))

	if snap.AdvancePending {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("已记录"))
	}
	return b.String()
}

func (s *AssessmentScreen) renderAnalyzing() string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + " " +
		theme.Body.Render("正在生成测评结果…")
}

func (s *AssessmentScreen) renderResult(snap navigator.Snapshot, cw int) string {
	if snap.Err != nil || snap.Outcome == nil || snap.Content == nil {
		msg := "评估失败"
		if snap.Err != nil {
			msg += ": " + snap.Err.Error()
		}
		return theme.Alert.Render(msg) + "\n\n" + theme.Hint.Render("按 R 重新开始")
	}

	content := snap.Content
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.ForTone(string(content.Tone))).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(content.Title)
	b.WriteString(title)
	b.WriteString("\n")

	total := fmt.Sprintf("总分 %d / %d", snap.Outcome.Breakdown.Total, s.variant.Engine.TotalMax())
	if content.ScoreRange != "" {
		total += "  (" + content.ScoreRange + ")"
	}
	b.WriteString(theme.Subtitle.Width(cw).Render(total))
	b.WriteString("\n\n")

	b.WriteString(renderCards(s.variant.Cards(snap.Outcome.Breakdown), cw))
	b.WriteString("\n\n")

	for _, p := range content.Description {
		b.WriteString(theme.Body.Width(cw).Render(p))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Hint.Render("按 R 重新测评"))
	return b.String()
}

// renderCards lays the section tiles out in a single row, wrapping to a
// second row when the width is tight.
func renderCards(cards []variant.SectionCard, cw int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := len(cards)
	cardW := cw/perRow - 1
	for cardW < 12 && perRow > 1 {
		perRow = (perRow + 1) / 2
		cardW = cw/perRow - 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		tiles := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			tiles = append(tiles, components.ScoreCard(c.Name, c.Score, c.Max, c.Highlight, cardW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
