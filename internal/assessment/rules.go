package assessment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quitcheck/internal/catalog"
)

// MaxPoints is the largest value a points table may assign to an option.
const MaxPoints = 3

// PointsTable maps each option symbol, by alphabet position, to points.
type PointsTable [catalog.OptionCount]int

var (
	// Ascending scores A lowest and D highest.
	Ascending = PointsTable{0, 1, 2, 3}
	// Descending scores A highest and D lowest.
	Descending = PointsTable{3, 2, 1, 0}
)

// Points returns the value assigned to sym.
func (p PointsTable) Points(sym catalog.Symbol) (int, bool) {
	i := sym.Index()
	if i < 0 {
		return 0, false
	}
	return p[i], true
}

// Reversed returns the table with its direction inverted.
func (p PointsTable) Reversed() PointsTable {
	var out PointsTable
	for i := range p {
		out[i] = p[len(p)-1-i]
	}
	return out
}

// Max returns the largest value in the table.
func (p PointsTable) Max() int {
	m := p[0]
	for _, v := range p[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Thresholds are the classification boundaries of a variant.
// A section missing from SectionHigh or SectionLow imposes no condition
// on the corresponding check.
type Thresholds struct {
	TotalHigh   int
	SectionHigh map[catalog.SectionID]int
	TotalLow    int
	SectionLow  map[catalog.SectionID]int
}

// HighFor returns the high-risk threshold of a section, if it has one.
func (t Thresholds) HighFor(id catalog.SectionID) (int, bool) {
	v, ok := t.SectionHigh[id]
	return v, ok
}

// LowFor returns the strategic threshold of a section, if it has one.
func (t Thresholds) LowFor(id catalog.SectionID) (int, bool) {
	v, ok := t.SectionLow[id]
	return v, ok
}

// Classify maps a breakdown to a result type. Any single high-risk
// condition is sufficient; the strategic band requires every condition.
func (t Thresholds) Classify(b ScoreBreakdown) catalog.ResultType {
	if t.isHighRisk(b) {
		return catalog.ResultHighRisk
	}
	if t.isStrategic(b) {
		return catalog.ResultStrategicResignation
	}
	return catalog.ResultPreparationNeeded
}

func (t Thresholds) isHighRisk(b ScoreBreakdown) bool {
	if b.Total >= t.TotalHigh {
		return true
	}
	for id, limit := range t.SectionHigh {
		if b.Section(id) >= limit {
			return true
		}
	}
	return false
}

func (t Thresholds) isStrategic(b ScoreBreakdown) bool {
	if b.Total > t.TotalLow {
		return false
	}
	for id, limit := range t.SectionLow {
		if b.Section(id) > limit {
			return false
		}
	}
	return true
}

// Rules is the scoring configuration of one variant.
type Rules struct {
	Points     map[catalog.SectionID]PointsTable
	Thresholds Thresholds
}

// validateRules checks rules against the catalog taxonomy.
// Returns a combined error describing all problems found, or nil if valid.
func validateRules(cat *catalog.Catalog, r Rules) error {
	var errs []string

	for _, s := range cat.Sections() {
		table, ok := r.Points[s.ID]
		if !ok {
			errs = append(errs, fmt.Sprintf("section %q has no points table", s.ID))
			continue
		}
		for i, v := range table {
			if v < 0 || v > MaxPoints {
				sym, _ := catalog.SymbolAt(i)
				errs = append(errs, fmt.Sprintf("section %q option %s scores %d, want 0-%d", s.ID, sym, v, MaxPoints))
			}
		}
	}
	for id := range r.Points {
		if !cat.HasSection(id) {
			errs = append(errs, fmt.Sprintf("points table for unknown section %q", id))
		}
	}
	for id := range r.Thresholds.SectionHigh {
		if !cat.HasSection(id) {
			errs = append(errs, fmt.Sprintf("high threshold for unknown section %q", id))
		}
	}
	for id := range r.Thresholds.SectionLow {
		if !cat.HasSection(id) {
			errs = append(errs, fmt.Sprintf("low threshold for unknown section %q", id))
		}
	}
	if r.Thresholds.TotalLow >= r.Thresholds.TotalHigh {
		errs = append(errs, fmt.Sprintf("total low threshold %d must be below total high threshold %d",
			r.Thresholds.TotalLow, r.Thresholds.TotalHigh))
	}

	if len(errs) > 0 {
		return errors.New("rules validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
