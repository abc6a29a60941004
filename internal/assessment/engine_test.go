package assessment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quitcheck/internal/catalog"
)

func options() [catalog.OptionCount]catalog.Option {
	var out [catalog.OptionCount]catalog.Option
	for i, sym := range catalog.Symbols() {
		out[i] = catalog.Option{ID: sym, Label: "option " + string(sym)}
	}
	return out
}

// testCatalog has two standard sections and one reverse-scored section:
// questions 1-3 "cash", 4-5 "risk", 6 "plan".
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	sections := []catalog.Section{
		{ID: "cash", Name: "Cash"},
		{ID: "risk", Name: "Risk"},
		{ID: "plan", Name: "Plan"},
	}
	var qs []catalog.Question
	add := func(id int, sec catalog.SectionID) {
		qs = append(qs, catalog.Question{ID: id, Section: sec, Text: "q", Options: options()})
	}
	add(1, "cash")
	add(2, "cash")
	add(3, "cash")
	add(4, "risk")
	add(5, "risk")
	add(6, "plan")

	c, err := catalog.New(sections, qs)
	require.NoError(t, err)
	return c
}

func testRules() Rules {
	return Rules{
		Points: map[catalog.SectionID]PointsTable{
			"cash": Ascending,
			"risk": Ascending.Reversed(),
			"plan": Ascending,
		},
		Thresholds: Thresholds{
			TotalHigh:   12,
			SectionHigh: map[catalog.SectionID]int{"cash": 7, "risk": 5},
			TotalLow:    4,
			SectionLow:  map[catalog.SectionID]int{"cash": 2, "risk": 2},
		},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(testCatalog(t), testRules())
	require.NoError(t, err)
	return e
}

func fill(c *catalog.Catalog, sym catalog.Symbol) Answers {
	a := Answers{}
	for _, q := range c.Questions() {
		a[q.ID] = sym
	}
	return a
}

func TestScore_TotalIsSumOfSections(t *testing.T) {
	e := testEngine(t)
	inputs := []Answers{
		{},
		{1: "A"},
		{1: "D", 2: "C", 4: "A", 6: "B"},
		fill(e.Catalog(), "A"),
		fill(e.Catalog(), "D"),
	}
	for _, a := range inputs {
		b, err := e.Score(a)
		require.NoError(t, err)
		sum := 0
		for _, id := range b.Order() {
			sum += b.Section(id)
		}
		assert.Equal(t, b.Total, sum, "answers %v", a)
		assert.Len(t, b.Sections, 3, "every section present even when unanswered")
	}
}

func TestScore_SectionIsolation(t *testing.T) {
	e := testEngine(t)
	b, err := e.Score(Answers{1: "D", 2: "D", 3: "D"})
	require.NoError(t, err)

	assert.Equal(t, 9, b.Section("cash"))
	assert.Equal(t, 0, b.Section("plan"))
	assert.Equal(t, 0, b.Section("risk"), "unanswered reversed section contributes zero")
	assert.Equal(t, 9, b.Total)
}

func TestScore_ReversedSection(t *testing.T) {
	e := testEngine(t)

	// The same symbol scores the maximum in the reversed section and the
	// minimum in a standard one.
	b, err := e.Score(Answers{1: "A", 4: "A"})
	require.NoError(t, err)
	assert.Equal(t, 0, b.Section("cash"))
	assert.Equal(t, 3, b.Section("risk"))

	b, err = e.Score(Answers{1: "D", 4: "D"})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Section("cash"))
	assert.Equal(t, 0, b.Section("risk"))
}

func TestScore_ReanswerOverwrites(t *testing.T) {
	e := testEngine(t)
	a := Answers{1: "D"}
	a[1] = "B"
	b, err := e.Score(a)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Total)
}

func TestScore_InvalidInput(t *testing.T) {
	e := testEngine(t)
	tests := []struct {
		name    string
		answers Answers
		wantQ   int
	}{
		{"unknown question", Answers{1: "A", 99: "A"}, 99},
		{"unknown symbol", Answers{2: "E"}, 2},
		{"lowercase symbol", Answers{3: "a"}, 3},
		{"empty symbol", Answers{4: ""}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Score(tt.answers)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var ie *InputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.wantQ, ie.QuestionID)

			_, err = e.Evaluate(tt.answers)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestClassify(t *testing.T) {
	th := testRules().Thresholds
	breakdown := func(total, cash, risk, plan int) ScoreBreakdown {
		return ScoreBreakdown{
			Total:    total,
			Sections: map[catalog.SectionID]int{"cash": cash, "risk": risk, "plan": plan},
		}
	}

	tests := []struct {
		name string
		b    ScoreBreakdown
		want catalog.ResultType
	}{
		{"all zero", breakdown(0, 0, 0, 0), catalog.ResultStrategicResignation},
		{"total at high threshold", breakdown(12, 4, 4, 3), catalog.ResultHighRisk},
		{"single section at high threshold", breakdown(7, 7, 0, 0), catalog.ResultHighRisk},
		{"reversed section at high threshold", breakdown(5, 0, 5, 0), catalog.ResultHighRisk},
		{"total at low threshold", breakdown(4, 2, 2, 0), catalog.ResultStrategicResignation},
		{"one section above low", breakdown(4, 3, 1, 0), catalog.ResultPreparationNeeded},
		{"unconstrained section ignored by low band", breakdown(3, 0, 0, 3), catalog.ResultStrategicResignation},
		{"middle band", breakdown(8, 4, 2, 2), catalog.ResultPreparationNeeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.Classify(tt.b))
		})
	}
}

func TestClassify_HighRiskPrecedence(t *testing.T) {
	// Low total and every strategic section condition satisfied except that
	// an unconstrained-for-low section crosses its own high threshold.
	th := Thresholds{
		TotalHigh:   30,
		SectionHigh: map[catalog.SectionID]int{"risk": 3},
		TotalLow:    10,
		SectionLow:  map[catalog.SectionID]int{"cash": 5},
	}
	b := ScoreBreakdown{Total: 3, Sections: map[catalog.SectionID]int{"cash": 0, "risk": 3}}
	assert.Equal(t, catalog.ResultHighRisk, th.Classify(b))
}

func TestClassify_Idempotent(t *testing.T) {
	e := testEngine(t)
	b, err := e.Score(Answers{1: "C", 4: "B", 6: "D"})
	require.NoError(t, err)
	first := e.Classify(b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Classify(b))
	}
}

func TestMaxima(t *testing.T) {
	e := testEngine(t)
	assert.Equal(t, 9, e.SectionMax("cash"))
	assert.Equal(t, 6, e.SectionMax("risk"))
	assert.Equal(t, 3, e.SectionMax("plan"))
	assert.Equal(t, 18, e.TotalMax())

	b, err := e.Score(fill(e.Catalog(), "D"))
	require.NoError(t, err)
	assert.Equal(t, 12, b.Total, "D scores 3 in standard sections and 0 in risk")
}

func TestNew_RejectsBadRules(t *testing.T) {
	c := testCatalog(t)

	missing := testRules()
	delete(missing.Points, "plan")
	_, err := New(c, missing)
	assert.ErrorContains(t, err, `"plan" has no points table`)

	outOfRange := testRules()
	outOfRange.Points["cash"] = PointsTable{0, 1, 2, 4}
	_, err = New(c, outOfRange)
	assert.ErrorContains(t, err, "scores 4")

	unknown := testRules()
	unknown.Thresholds.SectionHigh = map[catalog.SectionID]int{"family": 3}
	_, err = New(c, unknown)
	assert.ErrorContains(t, err, "unknown section")

	inverted := testRules()
	inverted.Thresholds.TotalLow = 20
	_, err = New(c, inverted)
	assert.ErrorContains(t, err, "must be below")
}

func TestNew_CopiesRules(t *testing.T) {
	rules := testRules()
	e, err := New(testCatalog(t), rules)
	require.NoError(t, err)

	rules.Thresholds.SectionHigh["cash"] = 0
	b, err := e.Score(Answers{1: "A"})
	require.NoError(t, err)
	assert.Equal(t, catalog.ResultStrategicResignation, e.Classify(b))
}

func TestPointsTable(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Reversed())
	assert.Equal(t, 3, Descending.Max())
	_, ok := Ascending.Points("X")
	assert.False(t, ok)
}
