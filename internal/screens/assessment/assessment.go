// Package assessment is the screen that walks a user through one variant:
// access gate, questions, analysis and result.
package assessment

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quitcheck/internal/catalog"
	"github.com/abhisek/quitcheck/internal/logger"
	"github.com/abhisek/quitcheck/internal/navigator"
	"github.com/abhisek/quitcheck/internal/screen"
	"github.com/abhisek/quitcheck/internal/ui/components"
	"github.com/abhisek/quitcheck/internal/ui/layout"
	"github.com/abhisek/quitcheck/internal/variant"
)

const spinnerInterval = 120 * time.Millisecond

// Options configures the screen. Delays apply only when the variant does
// not set its own; zero means no pause.
type Options struct {
	AdvanceDelay time.Duration
	AnalyzeDelay time.Duration
	Logger       logger.Logger
}

// AssessmentScreen renders one navigator.Controller and feeds it input.
type AssessmentScreen struct {
	variant *variant.Variant
	ctrl    *navigator.Controller
	queue   *navigator.TaskQueue

	startBtn  components.Button
	modalOpen bool
	code      components.TextInput
	codeErr   string

	options    components.OptionList
	optionsFor int // question id the option list was built for

	spinnerFrame int
	spinning     bool
}

var (
	_ screen.Screen          = (*AssessmentScreen)(nil)
	_ screen.Closer          = (*AssessmentScreen)(nil)
	_ screen.InputCapturer   = (*AssessmentScreen)(nil)
	_ screen.KeyHintProvider = (*AssessmentScreen)(nil)
)

// New creates a screen in the Welcome state for v.
func New(v *variant.Variant, opts Options) (*AssessmentScreen, error) {
	queue := navigator.NewTaskQueue()

	advance, analyze := v.Delays(opts.AdvanceDelay, opts.AnalyzeDelay)

	ctrl, err := navigator.New(v.Catalog, v.Engine, navigator.Options{
		Authorizer:   v.Authorizer(),
		Scheduler:    queue,
		AdvanceDelay: advance,
		AnalyzeDelay: analyze,
		Results:      v.Results,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	s := &AssessmentScreen{
		variant: v,
		ctrl:    ctrl,
		queue:   queue,
		code:    components.NewTextInput("访问码", 16),
	}
	s.startBtn = components.NewButton("开始测评", true, s.openModal)
	return s, nil
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return s.variant.Title
}

// CapturingInput reports whether the access modal is reading text.
func (s *AssessmentScreen) CapturingInput() bool {
	return s.modalOpen
}

// Close cancels any pending advance or analysis.
func (s *AssessmentScreen) Close() {
	s.ctrl.Close()
}

// State exposes the navigator state.
func (s *AssessmentScreen) State() navigator.State {
	return s.ctrl.State()
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.State() {
	case navigator.StateWelcome:
		if s.modalOpen {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Verify"},
				{Key: "Esc", Description: "Cancel"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case navigator.StateQuiz:
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "↑↓", Description: "Move"},
			{Key: "←", Description: "Previous"},
			{Key: "Esc", Description: "Leave"},
		}
	case navigator.StateResult:
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDueMsg:
		s.queue.Fire(msg.ID)
		return s, s.afterTransition()

	case spinnerTickMsg:
		if s.ctrl.State() != navigator.StateAnalyzing {
			s.spinning = false
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.modalOpen {
		var cmd tea.Cmd
		s.code, cmd = s.code.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.ctrl.State() {
	case navigator.StateWelcome:
		if s.modalOpen {
			return s.handleModalKey(msg)
		}
		if key == "space" {
			return s, s.openModal()
		}
		var cmd tea.Cmd
		s.startBtn, cmd = s.startBtn.Update(msg)
		return s, cmd

	case navigator.StateQuiz:
		switch key {
		case "left", "backspace":
			_ = s.ctrl.Back()
			return s, s.afterTransition()
		}
		s.syncOptions()
		s.options, _ = s.options.Update(msg)
		if i, ok := s.options.Take(); ok {
			sym, _ := catalog.SymbolAt(i)
			_ = s.ctrl.Answer(sym)
			return s, s.afterTransition()
		}

	case navigator.StateResult:
		switch key {
		case "r", "R", "enter":
			_ = s.ctrl.Restart()
			return s, s.afterTransition()
		}
	}
	return s, nil
}

func (s *AssessmentScreen) handleModalKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.modalOpen = false
		s.code.Model.Blur()
		return s, nil
	case "enter":
		err := s.ctrl.Start(s.code.Value())
		if errors.Is(err, navigator.ErrUnauthorized) {
			s.code.Submit(false)
			s.codeErr = "访问码错误，请重新输入"
			return s, nil
		}
		if err != nil {
			return s, nil
		}
		s.modalOpen = false
		s.code.Reset()
		s.code.Model.Blur()
		return s, s.afterTransition()
	}

	var cmd tea.Cmd
	s.code, cmd = s.code.Update(msg)
	if !s.code.Rejected() {
		s.codeErr = ""
	}
	return s, cmd
}

func (s *AssessmentScreen) openModal() tea.Cmd {
	s.modalOpen = true
	s.codeErr = ""
	s.code.Reset()
	return s.code.Model.Focus()
}

// syncOptions rebuilds the option list whenever the cursor lands on a
// different question.
func (s *AssessmentScreen) syncOptions() {
	snap := s.ctrl.View()
	if snap.Question == nil {
		s.optionsFor = 0
		return
	}
	if snap.Question.ID == s.optionsFor {
		return
	}

	labels := make([]string, 0, catalog.OptionCount)
	for _, o := range snap.Question.Options {
		labels = append(labels, o.Label)
	}
	recorded := -1
	if snap.Selected != "" {
		recorded = snap.Selected.Index()
	}
	s.options = components.NewOptionList(labels, recorded)
	s.optionsFor = snap.Question.ID
}

// afterTransition turns newly scheduled navigator tasks into ticks and
// starts the spinner when analysis begins.
func (s *AssessmentScreen) afterTransition() tea.Cmd {
	s.syncOptions()

	var cmds []tea.Cmd
	for _, task := range s.queue.Drain() {
		id := task.ID
		cmds = append(cmds, tea.Tick(task.Delay, func(time.Time) tea.Msg {
			return taskDueMsg{ID: id}
		}))
	}
	if s.ctrl.State() == navigator.StateAnalyzing && !s.spinning {
		s.spinning = true
		cmds = append(cmds, spinnerTick())
	}
	return tea.Batch(cmds...)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
