package catalog

import (
	"strings"
	"testing"
)

func opts(labels ...string) [OptionCount]Option {
	var out [OptionCount]Option
	for i, sym := range Symbols() {
		out[i] = Option{ID: sym, Label: labels[i]}
	}
	return out
}

func testSections() []Section {
	return []Section{
		{ID: "cash", Name: "Cash runway"},
		{ID: "retreat", Name: "Retreat"},
	}
}

func testQuestions() []Question {
	return []Question{
		{ID: 1, Section: "cash", Text: "Savings?", Options: opts("a", "b", "c", "d")},
		{ID: 2, Section: "cash", Text: "Expenses?", Options: opts("a", "b", "c", "d")},
		{ID: 3, Section: "retreat", Text: "Way back?", Options: opts("a", "b", "c", "d")},
	}
}

func TestNew_Valid(t *testing.T) {
	c, err := New(testSections(), testQuestions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
	q, ok := c.Question(3)
	if !ok {
		t.Fatal("question 3 not found")
	}
	if q.SectionName != "Retreat" {
		t.Errorf("SectionName = %q, want filled from section list", q.SectionName)
	}
	if c.CountIn("cash") != 2 {
		t.Errorf("CountIn(cash) = %d, want 2", c.CountIn("cash"))
	}
	if _, ok := c.At(3); ok {
		t.Error("At(3) should be out of range")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	qs := testQuestions()
	c, err := New(testSections(), qs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	qs[0].Text = "mutated"
	q, _ := c.At(0)
	if q.Text != "Savings?" {
		t.Errorf("catalog should not alias caller slice, got %q", q.Text)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(secs []Section, qs []Question) ([]Section, []Question)
		wantSub string
	}{
		{
			name: "duplicate id",
			mutate: func(s []Section, q []Question) ([]Section, []Question) {
				q[1].ID = 1
				return s, q
			},
			wantSub: "not greater",
		},
		{
			name: "unknown section",
			mutate: func(s []Section, q []Question) ([]Section, []Question) {
				q[0].Section = "family"
				return s, q
			},
			wantSub: "unknown section",
		},
		{
			name: "option order",
			mutate: func(s []Section, q []Question) ([]Section, []Question) {
				q[0].Options[0].ID, q[0].Options[1].ID = SymbolB, SymbolA
				return s, q
			},
			wantSub: "option 0",
		},
		{
			name: "empty label",
			mutate: func(s []Section, q []Question) ([]Section, []Question) {
				q[2].Options[3].Label = " "
				return s, q
			},
			wantSub: "empty label",
		},
		{
			name: "unused section",
			mutate: func(s []Section, q []Question) ([]Section, []Question) {
				return append(s, Section{ID: "income"}), q
			},
			wantSub: "no questions",
		},
		{
			name: "empty catalog",
			mutate: func(s []Section, q []Question) ([]Section, []Question) {
				return s, nil
			},
			wantSub: "no questions defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secs, qs := tt.mutate(testSections(), testQuestions())
			_, err := New(secs, qs)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error should mention %q, got: %v", tt.wantSub, err)
			}
		})
	}
}

func TestParseSymbol(t *testing.T) {
	for _, in := range []string{"a", " B", "c ", "D"} {
		if _, err := ParseSymbol(in); err != nil {
			t.Errorf("ParseSymbol(%q): %v", in, err)
		}
	}
	for _, in := range []string{"", "E", "AB", "1"} {
		if _, err := ParseSymbol(in); err == nil {
			t.Errorf("ParseSymbol(%q) should fail", in)
		}
	}
}

func TestResultsLookupFallback(t *testing.T) {
	rs := Results{ResultHighRisk: {Title: "Stop"}}
	if got := rs.Lookup(ResultHighRisk).Title; got != "Stop" {
		t.Errorf("Lookup = %q", got)
	}
	if got := rs.Lookup(ResultPreparationNeeded).Title; got != string(ResultPreparationNeeded) {
		t.Errorf("fallback title = %q", got)
	}
}
