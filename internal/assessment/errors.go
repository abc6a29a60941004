package assessment

import (
	"errors"
	"fmt"

	"github.com/abhisek/quitcheck/internal/catalog"
)

// ErrInvalidInput is matched by every error caused by a malformed answer entry.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a single rejected answer entry.
type InputError struct {
	QuestionID int
	Symbol     catalog.Symbol
	Reason     string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("answer for question %d (%q): %s", e.QuestionID, e.Symbol, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
