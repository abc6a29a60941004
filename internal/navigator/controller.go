package navigator

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quitcheck/internal/access"
	"github.com/abhisek/quitcheck/internal/assessment"
	"github.com/abhisek/quitcheck/internal/catalog"
	"github.com/abhisek/quitcheck/internal/logger"
)

// Default cosmetic delays.
const (
	DefaultAdvanceDelay = 200 * time.Millisecond
	DefaultAnalyzeDelay = 1500 * time.Millisecond
)

// Evaluator classifies a complete set of answers.
type Evaluator interface {
	Evaluate(answers assessment.Answers) (assessment.Outcome, error)
}

// Options configures a Controller. Nil fields select the defaults. A zero
// delay means no pause; a negative delay selects the default.
type Options struct {
	Authorizer   access.Authorizer
	Scheduler    Scheduler
	AdvanceDelay time.Duration
	AnalyzeDelay time.Duration
	Results      catalog.Results
	Logger       logger.Logger
	NewAttemptID func() string
}

func (o Options) withDefaults() Options {
	if o.Authorizer == nil {
		o.Authorizer = access.Open()
	}
	if o.Scheduler == nil {
		o.Scheduler = Immediate()
	}
	if o.AdvanceDelay < 0 {
		o.AdvanceDelay = DefaultAdvanceDelay
	}
	if o.AnalyzeDelay < 0 {
		o.AnalyzeDelay = DefaultAnalyzeDelay
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.NewAttemptID == nil {
		o.NewAttemptID = uuid.NewString
	}
	return o
}

type pendingTask struct {
	cancel func()
	done   bool
}

func (t *pendingTask) active() bool {
	return t != nil && !t.done
}

func (t *pendingTask) stop() {
	if !t.active() {
		return
	}
	t.done = true
	if t.cancel != nil {
		t.cancel()
	}
}

// Controller walks a user through a catalog one question at a time and
// requests classification once every question is answered.
//
// A Controller is owned by a single goroutine; scheduled callbacks must be
// delivered on that goroutine (see TaskQueue).
type Controller struct {
	cat  *catalog.Catalog
	eval Evaluator
	opts Options

	state     State
	cursor    int
	answers   assessment.Answers
	attemptID string

	outcome *assessment.Outcome
	content *catalog.ResultContent
	err     error

	advance *pendingTask
	analyze *pendingTask
	closed  bool
}

// New creates a Controller in the Welcome state.
func New(cat *catalog.Catalog, eval Evaluator, opts Options) (*Controller, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New("navigator: empty catalog")
	}
	if eval == nil {
		return nil, errors.New("navigator: nil evaluator")
	}
	return &Controller{
		cat:     cat,
		eval:    eval,
		opts:    opts.withDefaults(),
		state:   StateWelcome,
		answers: assessment.Answers{},
	}, nil
}

// State returns the current navigation state.
func (c *Controller) State() State {
	return c.state
}

// Cursor returns the index of the current question.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Answers returns a copy of the answers recorded in this attempt.
func (c *Controller) Answers() assessment.Answers {
	return c.answers.Clone()
}

// Start leaves Welcome for the first question when candidate is accepted.
// Every start begins with an empty answer set.
func (c *Controller) Start(candidate string) error {
	if c.state != StateWelcome {
		return &TransitionError{Op: "start", State: c.state}
	}
	if !c.opts.Authorizer(candidate) {
		c.opts.Logger.Warn("access code rejected")
		return ErrUnauthorized
	}

	c.reset()
	c.attemptID = c.opts.NewAttemptID()
	c.state = StateQuiz
	c.opts.Logger.Info("assessment started", "attempt", c.attemptID, "questions", c.cat.Len())
	return nil
}

// Answer records sym for the current question. Before the last question
// the cursor advances after the advance delay; on the last question the
// controller moves to Analyzing and classifies after the analyze delay.
// While an advance is pending, another answer only replaces the recorded
// choice.
func (c *Controller) Answer(sym catalog.Symbol) error {
	if c.state != StateQuiz {
		return &TransitionError{Op: "answer", State: c.state}
	}
	q, _ := c.cat.At(c.cursor)
	if !sym.Valid() {
		return &assessment.InputError{QuestionID: q.ID, Symbol: sym, Reason: "unknown option"}
	}

	c.answers[q.ID] = sym
	c.opts.Logger.Debug("answer recorded", "attempt", c.attemptID, "question", q.ID, "option", string(sym))

	if c.advance.active() {
		return nil
	}
	if c.cursor < c.cat.Len()-1 {
		c.advance = c.schedule(c.opts.AdvanceDelay, c.advanceCursor)
		return nil
	}

	c.state = StateAnalyzing
	c.analyze = c.schedule(c.opts.AnalyzeDelay, c.finish)
	return nil
}

// Back returns to the previous question, keeping its recorded answer.
// From the first question it returns to Welcome.
func (c *Controller) Back() error {
	if c.state != StateQuiz {
		return &TransitionError{Op: "back", State: c.state}
	}
	c.advance.stop()

	if c.cursor > 0 {
		c.cursor--
		return nil
	}
	c.state = StateWelcome
	c.opts.Logger.Debug("assessment abandoned", "attempt", c.attemptID)
	return nil
}

// Restart leaves Result for Welcome, discarding the attempt.
func (c *Controller) Restart() error {
	if c.state != StateResult {
		return &TransitionError{Op: "restart", State: c.state}
	}
	c.reset()
	c.attemptID = ""
	c.state = StateWelcome
	return nil
}

// Close cancels every pending scheduled transition. Callbacks delivered
// after Close are ignored.
func (c *Controller) Close() {
	c.closed = true
	c.advance.stop()
	c.analyze.stop()
}

// View returns the data needed to render the current state.
func (c *Controller) View() Snapshot {
	s := Snapshot{
		State:     c.state,
		AttemptID: c.attemptID,
		Cursor:    c.cursor,
		Total:     c.cat.Len(),
		Answered:  len(c.answers),
	}

	switch c.state {
	case StateQuiz:
		q, _ := c.cat.At(c.cursor)
		s.Question = &q
		s.Selected = c.answers[q.ID]
		s.AdvancePending = c.advance.active()
	case StateResult:
		s.Outcome = c.outcome
		s.Content = c.content
		s.Err = c.err
	}
	return s
}

func (c *Controller) reset() {
	c.advance.stop()
	c.analyze.stop()
	c.cursor = 0
	c.answers = assessment.Answers{}
	c.outcome = nil
	c.content = nil
	c.err = nil
}

func (c *Controller) schedule(d time.Duration, fn func()) *pendingTask {
	t := &pendingTask{}
	t.cancel = c.opts.Scheduler.Schedule(d, func() {
		if c.closed || t.done {
			return
		}
		t.done = true
		fn()
	})
	return t
}

func (c *Controller) advanceCursor() {
	if c.state != StateQuiz {
		return
	}
	if c.cursor < c.cat.Len()-1 {
		c.cursor++
	}
}

func (c *Controller) finish() {
	if c.state != StateAnalyzing {
		return
	}

	outcome, err := c.eval.Evaluate(c.answers.Clone())
	c.state = StateResult
	if err != nil {
		c.err = err
		c.opts.Logger.Error("evaluation failed", "attempt", c.attemptID, "err", err)
		return
	}

	content := c.opts.Results.Lookup(outcome.Type)
	c.outcome = &outcome
	c.content = &content
	c.opts.Logger.Info("assessment completed",
		"attempt", c.attemptID,
		"result", string(outcome.Type),
		"total", outcome.Breakdown.Total,
	)
}
