package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quitcheck/internal/assessment"
	"github.com/abhisek/quitcheck/internal/catalog"
	"github.com/abhisek/quitcheck/internal/variant"
)

func survivalReport(t *testing.T, sym catalog.Symbol) Report {
	t.Helper()
	v, err := variant.Load("survival")
	require.NoError(t, err)

	answers := assessment.Answers{}
	for _, q := range v.Catalog.Questions() {
		answers[q.ID] = sym
	}
	out, err := v.Engine.Evaluate(answers)
	require.NoError(t, err)
	return New(v, answers, out)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"TEXT", FormatText, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"html", FormatHTML, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNew(t *testing.T) {
	r := survivalReport(t, catalog.SymbolA)
	assert.Equal(t, catalog.ResultHighRisk, r.Type)
	assert.Equal(t, 60, r.Total)
	assert.Equal(t, 60, r.TotalMax)
	assert.Equal(t, 20, r.Answered)
	assert.Len(t, r.Cards, 4)
	assert.Equal(t, catalog.ToneDanger, r.Content.Tone)
}

func TestWriteText(t *testing.T) {
	color.NoColor = true
	r := survivalReport(t, catalog.SymbolD)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Total: 0 / 60")
	assert.Contains(t, out, r.Content.Title)
	assert.Contains(t, out, "现金跑道")
	assert.NotContains(t, out, "Answered", "complete attempts do not mention coverage")
	assert.NotContains(t, out, "!")
}

func TestWriteText_PartialAttempt(t *testing.T) {
	color.NoColor = true
	r := survivalReport(t, catalog.SymbolD)
	r.Answered = 5

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), "Answered 5 of 20 questions")
}

func TestMarkdown(t *testing.T) {
	r := survivalReport(t, catalog.SymbolA)
	md := Markdown(r)

	assert.True(t, strings.HasPrefix(md, "# "+r.Title+"\n"))
	assert.Contains(t, md, "**Total:** 60 / 60")
	assert.Contains(t, md, "| 现金跑道 | **18** | 18 |")
	for _, p := range r.Content.Description {
		assert.Contains(t, md, p)
	}
}

func TestHTML(t *testing.T) {
	r := survivalReport(t, catalog.SymbolD)
	html, err := HTML(r)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<strong>Total:</strong> 0 / 60")
}

func TestWrite_Dispatch(t *testing.T) {
	color.NoColor = true
	r := survivalReport(t, catalog.SymbolD)

	for _, f := range []Format{FormatText, FormatMarkdown, FormatHTML} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, r, f), f)
		assert.NotEmpty(t, buf.String(), f)
	}
	assert.Error(t, Write(&bytes.Buffer{}, r, Format("pdf")))
}
