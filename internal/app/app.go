// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quitcheck/internal/config"
	"github.com/abhisek/quitcheck/internal/logger"
	"github.com/abhisek/quitcheck/internal/router"
	"github.com/abhisek/quitcheck/internal/screen"
	"github.com/abhisek/quitcheck/internal/screens/assessment"
	"github.com/abhisek/quitcheck/internal/screens/home"
	"github.com/abhisek/quitcheck/internal/screens/welcome"
	"github.com/abhisek/quitcheck/internal/ui/layout"
	"github.com/abhisek/quitcheck/internal/variant"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Config   *config.Config
	Variants []*variant.Variant
	Logger   logger.Logger

	// SkipSplash starts on the variant picker.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at the splash screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	factory := func(v *variant.Variant) (screen.Screen, error) {
		log.Info("variant opened", "variant", v.Name)
		return assessment.New(v, assessment.Options{
			AdvanceDelay: cfg.AdvanceDelay,
			AnalyzeDelay: cfg.AnalyzeDelay,
			Logger:       log,
		})
	}
	newHome := func() screen.Screen {
		return home.New(opts.Variants, cfg.Variant, factory)
	}

	var first screen.Screen
	if opts.SkipSplash {
		first = newHome()
	} else {
		first = welcome.New(opts.Variants, newHome)
	}
	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			// A screen reading text handles esc itself.
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) status() string {
	if s, ok := m.router.Active().(*assessment.AssessmentScreen); ok {
		return s.State().String()
	}
	return ""
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	_, err := p.Run()
	m.router.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
