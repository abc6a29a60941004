package welcome

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quitcheck/internal/router"
	"github.com/abhisek/quitcheck/internal/screen"
	"github.com/abhisek/quitcheck/internal/ui/theme"
	"github.com/abhisek/quitcheck/internal/variant"
)

const (
	tickInterval = 100 * time.Millisecond
	signpostEnd  = 400 * time.Millisecond
	revealStep   = 300 * time.Millisecond
)

const signpostArt = `      ┌──────────┐
      │  STAY  ◀ │
      └────┬─────┘
   ┌───────┴──┐
   │ ▶  GO    │
   └───────┬──┘
           │
           │`

var scanFrames = []string{"◐", "◓", "◑", "◒"}

// Tagline is shown under the banner.
const Tagline = "先诊断，再决定。"

type tickMsg time.Time

// WelcomeScreen shows the signpost, checks off each installed variant and
// then hands over to the variant picker on the next key.
type WelcomeScreen struct {
	variants     []*variant.Variant
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen listing variants that will transition to the
// screen produced by homeFactory.
func New(variants []*variant.Variant, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		variants:    variants,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// bannerAt is when every variant has been revealed.
func (w *WelcomeScreen) bannerAt() time.Duration {
	return signpostEnd + time.Duration(len(w.variants))*revealStep
}

// revealed returns how many variant lines are visible.
func (w *WelcomeScreen) revealed() int {
	if w.elapsed < signpostEnd {
		return 0
	}
	n := int((w.elapsed-signpostEnd)/revealStep) + 1
	return min(n, len(w.variants))
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < w.bannerAt() {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Accent).Render(signpostArt),
	}

	done := w.elapsed >= w.bannerAt()
	if n := w.revealed(); n > 0 {
		sections = append(sections, "", w.renderChecklist(n, done))
	}

	if done {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderChecklist lists the first n variants. Until the banner shows, the
// newest line carries a spinner instead of a check.
func (w *WelcomeScreen) renderChecklist(n int, done bool) string {
	check := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	scan := lipgloss.NewStyle().Foreground(theme.Accent).Render(scanFrames[w.tickCount%len(scanFrames)])
	title := lipgloss.NewStyle().Foreground(theme.Text)
	detail := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := make([]string, 0, n)
	for i, v := range w.variants[:n] {
		mark := check
		if i == n-1 && !done {
			mark = scan
		}
		info := fmt.Sprintf("%d 题 · %d 维度", v.Catalog.Len(), len(v.Catalog.Sections()))
		lines = append(lines, mark+" "+title.Render(v.Title)+"  "+detail.Render(info))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
