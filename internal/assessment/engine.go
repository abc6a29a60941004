package assessment

import (
	"fmt"
	"sort"

	"github.com/abhisek/quitcheck/internal/catalog"
)

// Answers maps a question id to the chosen option.
type Answers map[int]catalog.Symbol

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ScoreBreakdown holds the total and per-section points of one evaluation.
type ScoreBreakdown struct {
	Total    int
	Sections map[catalog.SectionID]int
	order    []catalog.SectionID
}

// Section returns the subtotal of id, zero for unknown sections.
func (b ScoreBreakdown) Section(id catalog.SectionID) int {
	return b.Sections[id]
}

// Order returns the section ids in catalog display order.
func (b ScoreBreakdown) Order() []catalog.SectionID {
	out := make([]catalog.SectionID, len(b.order))
	copy(out, b.order)
	return out
}

// Outcome is the result of evaluating a set of answers.
type Outcome struct {
	Breakdown ScoreBreakdown
	Type      catalog.ResultType
}

// Engine scores answers against a catalog and classifies the result.
// It holds no mutable state; every call recomputes from its input.
type Engine struct {
	cat   *catalog.Catalog
	rules Rules
}

// New creates an Engine after checking rules against the catalog taxonomy.
func New(cat *catalog.Catalog, rules Rules) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	if err := validateRules(cat, rules); err != nil {
		return nil, err
	}
	return &Engine{cat: cat, rules: copyRules(rules)}, nil
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Rules returns a copy of the scoring rules.
func (e *Engine) Rules() Rules {
	return copyRules(e.rules)
}

// Score computes the breakdown for answers. Questions without an answer
// contribute zero. Entries for unknown questions or with a symbol outside
// the alphabet are rejected with an *InputError.
func (e *Engine) Score(answers Answers) (ScoreBreakdown, error) {
	if err := e.checkAnswers(answers); err != nil {
		return ScoreBreakdown{}, err
	}

	sections := e.cat.Sections()
	b := ScoreBreakdown{
		Sections: make(map[catalog.SectionID]int, len(sections)),
		order:    make([]catalog.SectionID, 0, len(sections)),
	}
	for _, s := range sections {
		b.Sections[s.ID] = 0
		b.order = append(b.order, s.ID)
	}

	for _, q := range e.cat.Questions() {
		sym, ok := answers[q.ID]
		if !ok {
			continue
		}
		points, _ := e.rules.Points[q.Section].Points(sym)
		b.Sections[q.Section] += points
		b.Total += points
	}
	return b, nil
}

// checkAnswers validates entries in ascending question order so the
// reported error is deterministic.
func (e *Engine) checkAnswers(answers Answers) error {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		sym := answers[id]
		if _, ok := e.cat.Question(id); !ok {
			return &InputError{QuestionID: id, Symbol: sym, Reason: "unknown question"}
		}
		if !sym.Valid() {
			return &InputError{QuestionID: id, Symbol: sym, Reason: "unknown option"}
		}
	}
	return nil
}

// Classify maps a breakdown to a result type using the engine's thresholds.
func (e *Engine) Classify(b ScoreBreakdown) catalog.ResultType {
	return e.rules.Thresholds.Classify(b)
}

// Evaluate scores and classifies answers in one call.
func (e *Engine) Evaluate(answers Answers) (Outcome, error) {
	b, err := e.Score(answers)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Breakdown: b, Type: e.Classify(b)}, nil
}

// SectionMax returns the highest subtotal attainable in section id.
func (e *Engine) SectionMax(id catalog.SectionID) int {
	table, ok := e.rules.Points[id]
	if !ok {
		return 0
	}
	return e.cat.CountIn(id) * table.Max()
}

// TotalMax returns the highest attainable total.
func (e *Engine) TotalMax() int {
	total := 0
	for _, s := range e.cat.Sections() {
		total += e.SectionMax(s.ID)
	}
	return total
}

func copyRules(r Rules) Rules {
	out := Rules{
		Points: make(map[catalog.SectionID]PointsTable, len(r.Points)),
		Thresholds: Thresholds{
			TotalHigh:   r.Thresholds.TotalHigh,
			TotalLow:    r.Thresholds.TotalLow,
			SectionHigh: make(map[catalog.SectionID]int, len(r.Thresholds.SectionHigh)),
			SectionLow:  make(map[catalog.SectionID]int, len(r.Thresholds.SectionLow)),
		},
	}
	for k, v := range r.Points {
		out.Points[k] = v
	}
	for k, v := range r.Thresholds.SectionHigh {
		out.Thresholds.SectionHigh[k] = v
	}
	for k, v := range r.Thresholds.SectionLow {
		out.Thresholds.SectionLow[k] = v
	}
	return out
}
