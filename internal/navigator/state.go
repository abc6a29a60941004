package navigator

import (
	"errors"
	"fmt"

	"github.com/abhisek/quitcheck/internal/assessment"
	"github.com/abhisek/quitcheck/internal/catalog"
)

// State is the navigation phase of an assessment.
type State int

const (
	StateWelcome   State = iota // Waiting for an access code
	StateQuiz                   // Answering questions
	StateAnalyzing              // All answered, result pending
	StateResult                 // Outcome available
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateQuiz:
		return "quiz"
	case StateAnalyzing:
		return "analyzing"
	case StateResult:
		return "result"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrUnauthorized is returned by Start when the access code is rejected.
	ErrUnauthorized = errors.New("incorrect access code")

	// ErrInvalidTransition is matched by every *TransitionError.
	ErrInvalidTransition = errors.New("invalid transition")
)

// TransitionError reports an operation attempted in a state that does not
// allow it.
type TransitionError struct {
	Op    string
	State State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed in %s state", e.Op, e.State)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Snapshot is everything the presentation layer needs to render the
// current state.
type Snapshot struct {
	State     State
	AttemptID string

	// Quiz fields.
	Cursor         int
	Total          int
	Question       *catalog.Question
	Selected       catalog.Symbol // answer already recorded for Question, if any
	Answered       int
	AdvancePending bool

	// Result fields.
	Outcome *assessment.Outcome
	Content *catalog.ResultContent
	Err     error
}

// Progress returns (cursor+1)/total, the fraction shown while answering.
func (s Snapshot) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Cursor+1) / float64(s.Total)
}
