// Package variant loads the questionnaires shipped with quitcheck.
//
// A variant is one configuration of the assessment engine: its own catalog,
// section taxonomy, point direction, thresholds and result copy. Variants
// are YAML documents embedded in the binary and checked against a JSON
// schema before they are built.
package variant

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/quitcheck/internal/access"
	"github.com/abhisek/quitcheck/internal/assessment"
	"github.com/abhisek/quitcheck/internal/catalog"
)

// Variant is a fully built questionnaire.
type Variant struct {
	Name    string
	Title   string
	Tagline string
	Format  string
	Token   string

	Catalog *catalog.Catalog
	Engine  *assessment.Engine
	Results catalog.Results

	// Delays set by the document; see Delays.
	AdvanceDelay time.Duration
	AnalyzeDelay time.Duration
	advanceSet   bool
	analyzeSet   bool

	highlights map[catalog.SectionID]int
}

// Delays returns the variant's own delays where its document sets them,
// including an explicit zero, and advance or analyze otherwise.
func (v *Variant) Delays(advance, analyze time.Duration) (time.Duration, time.Duration) {
	if v.advanceSet {
		advance = v.AdvanceDelay
	}
	if v.analyzeSet {
		analyze = v.AnalyzeDelay
	}
	return advance, analyze
}

// Authorizer returns the access gate for this variant.
func (v *Variant) Authorizer() access.Authorizer {
	return access.Token(v.Token)
}

// Thresholds returns the classification thresholds.
func (v *Variant) Thresholds() assessment.Thresholds {
	return v.Engine.Rules().Thresholds
}

// CardThreshold returns the score at which a section's card is highlighted:
// an explicit highlight if the variant sets one, else the section's
// high-risk threshold.
func (v *Variant) CardThreshold(id catalog.SectionID) (int, bool) {
	if h, ok := v.highlights[id]; ok {
		return h, true
	}
	return v.Thresholds().HighFor(id)
}

// SectionCard is one row of a result summary.
type SectionCard struct {
	ID        catalog.SectionID
	Name      string
	Score     int
	Max       int
	Highlight bool
}

// Cards returns the per-section summary of b in catalog order.
func (v *Variant) Cards(b assessment.ScoreBreakdown) []SectionCard {
	sections := v.Catalog.Sections()
	cards := make([]SectionCard, 0, len(sections))
	for _, s := range sections {
		c := SectionCard{
			ID:    s.ID,
			Name:  s.Name,
			Score: b.Section(s.ID),
			Max:   v.Engine.SectionMax(s.ID),
		}
		if limit, ok := v.CardThreshold(s.ID); ok {
			c.Highlight = c.Score >= limit
		}
		cards = append(cards, c)
	}
	return cards
}

// ParseAnswers reads a positional answer string: the i-th character
// answers the i-th question. '-', '_', '.' and spaces leave a question
// unanswered; letters are case-insensitive.
func (v *Variant) ParseAnswers(s string) (assessment.Answers, error) {
	runes := []rune(s)
	if len(runes) > v.Catalog.Len() {
		return nil, fmt.Errorf("%d answers given, %s has %d questions", len(runes), v.Name, v.Catalog.Len())
	}

	answers := assessment.Answers{}
	for i, r := range runes {
		switch r {
		case '-', '_', '.', ' ':
			continue
		}
		q, _ := v.Catalog.At(i)
		sym, err := catalog.ParseSymbol(string(r))
		if err != nil {
			return nil, &assessment.InputError{QuestionID: q.ID, Symbol: catalog.Symbol(string(r)), Reason: "unknown option"}
		}
		answers[q.ID] = sym
	}
	return answers, nil
}

// AnswersFromMap converts question id to letter pairs, as read from an
// answers file, checking every id against the catalog. Entries are checked
// in ascending id order so the reported error is stable.
func (v *Variant) AnswersFromMap(m map[int]string) (assessment.Answers, error) {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	answers := make(assessment.Answers, len(m))
	for _, id := range ids {
		raw := m[id]
		if _, ok := v.Catalog.Question(id); !ok {
			return nil, &assessment.InputError{QuestionID: id, Symbol: catalog.Symbol(raw), Reason: "unknown question"}
		}
		sym, err := catalog.ParseSymbol(raw)
		if err != nil {
			return nil, &assessment.InputError{QuestionID: id, Symbol: catalog.Symbol(raw), Reason: "unknown option"}
		}
		answers[id] = sym
	}
	return answers, nil
}
