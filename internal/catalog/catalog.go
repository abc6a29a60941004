package catalog

import (
	"fmt"
	"strings"
)

// Symbol identifies one of the four options of a question.
type Symbol string

const (
	SymbolA Symbol = "A"
	SymbolB Symbol = "B"
	SymbolC Symbol = "C"
	SymbolD Symbol = "D"
)

// OptionCount is the number of options every question carries.
const OptionCount = 4

// Symbols returns the option alphabet in canonical order.
func Symbols() [OptionCount]Symbol {
	return [OptionCount]Symbol{SymbolA, SymbolB, SymbolC, SymbolD}
}

// Index returns the 0-based position of the symbol in the alphabet,
// or -1 if s is not a valid symbol.
func (s Symbol) Index() int {
	switch s {
	case SymbolA:
		return 0
	case SymbolB:
		return 1
	case SymbolC:
		return 2
	case SymbolD:
		return 3
	default:
		return -1
	}
}

// Valid reports whether s is one of the four option symbols.
func (s Symbol) Valid() bool {
	return s.Index() >= 0
}

// ParseSymbol normalizes user text ("a", " B ") to a Symbol.
func ParseSymbol(text string) (Symbol, error) {
	s := Symbol(strings.ToUpper(strings.TrimSpace(text)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid option %q: want one of A, B, C, D", text)
	}
	return s, nil
}

// SymbolAt returns the symbol at position i of the alphabet.
func SymbolAt(i int) (Symbol, bool) {
	if i < 0 || i >= OptionCount {
		return "", false
	}
	return Symbols()[i], true
}

// SectionID tags the dimension a question measures.
type SectionID string

// Section is one entry of a variant's section taxonomy.
type Section struct {
	ID   SectionID
	Name string
}

// Option is a single answer choice.
type Option struct {
	ID    Symbol
	Label string
}

// Question is a single catalog entry.
type Question struct {
	ID          int
	Section     SectionID
	SectionName string
	Text        string
	Options     [OptionCount]Option
}

// Option returns the option labelled sym.
func (q Question) Option(sym Symbol) (Option, bool) {
	i := sym.Index()
	if i < 0 {
		return Option{}, false
	}
	return q.Options[i], true
}

// Catalog is the ordered, read-only question list of a variant.
type Catalog struct {
	sections  []Section
	questions []Question
	byID      map[int]int
}

// New builds a catalog and validates its structure.
// Each question's SectionName is filled from the section list when empty.
func New(sections []Section, questions []Question) (*Catalog, error) {
	names := make(map[SectionID]string, len(sections))
	for _, s := range sections {
		names[s.ID] = s.Name
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)
	for i := range qs {
		if qs[i].SectionName == "" {
			qs[i].SectionName = names[qs[i].Section]
		}
	}

	if err := validate(sections, qs); err != nil {
		return nil, err
	}

	secs := make([]Section, len(sections))
	copy(secs, sections)

	byID := make(map[int]int, len(qs))
	for i, q := range qs {
		byID[q.ID] = i
	}

	return &Catalog{sections: secs, questions: qs, byID: byID}, nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at presentation index i.
func (c *Catalog) At(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[i], true
}

// Question looks up a question by id.
func (c *Catalog) Question(id int) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Questions returns a copy of the questions in presentation order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Sections returns a copy of the section taxonomy in display order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// HasSection reports whether id belongs to the taxonomy.
func (c *Catalog) HasSection(id SectionID) bool {
	for _, s := range c.sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// CountIn returns the number of questions tagged with section id.
func (c *Catalog) CountIn(id SectionID) int {
	n := 0
	for _, q := range c.questions {
		if q.Section == id {
			n++
		}
	}
	return n
}
