// Package report renders a finished assessment for non-interactive output.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/abhisek/quitcheck/internal/assessment"
	"github.com/abhisek/quitcheck/internal/catalog"
	"github.com/abhisek/quitcheck/internal/variant"
)

// Format selects an output renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts text, markdown (or md) and html.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, markdown or html)", s)
	}
}

// Report is an evaluated attempt together with its display copy.
type Report struct {
	Variant  string
	Title    string
	Type     catalog.ResultType
	Content  catalog.ResultContent
	Total    int
	TotalMax int
	Cards    []variant.SectionCard
	Answered int
	Count    int
}

// New assembles a report for outcome, evaluated against v.
func New(v *variant.Variant, answers assessment.Answers, outcome assessment.Outcome) Report {
	return Report{
		Variant:  v.Name,
		Title:    v.Title,
		Type:     outcome.Type,
		Content:  v.Results.Lookup(outcome.Type),
		Total:    outcome.Breakdown.Total,
		TotalMax: v.Engine.TotalMax(),
		Cards:    v.Cards(outcome.Breakdown),
		Answered: len(answers),
		Count:    v.Catalog.Len(),
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, r)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		html, err := HTML(r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func toneColor(t catalog.Tone) *color.Color {
	switch t {
	case catalog.ToneDanger:
		return color.New(color.FgRed, color.Bold)
	case catalog.ToneWarning:
		return color.New(color.FgYellow, color.Bold)
	case catalog.ToneSuccess:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.Bold)
	}
}

// WriteText prints a colored terminal summary.
func WriteText(w io.Writer, r Report) error {
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed)
	faint := color.New(color.Faint)

	var buf bytes.Buffer
	cyan.Fprintf(&buf, "%s\n\n", r.Title)
	toneColor(r.Content.Tone).Fprintf(&buf, "%s\n", r.Content.Title)
	fmt.Fprintf(&buf, "Total: %d / %d", r.Total, r.TotalMax)
	if r.Content.ScoreRange != "" {
		faint.Fprintf(&buf, "  (%s)", r.Content.ScoreRange)
	}
	fmt.Fprintln(&buf)
	if r.Answered < r.Count {
		faint.Fprintf(&buf, "Answered %d of %d questions\n", r.Answered, r.Count)
	}

	fmt.Fprintln(&buf)
	for _, c := range r.Cards {
		fmt.Fprintf(&buf, "  %-20s ", c.Name)
		if c.Highlight {
			red.Fprintf(&buf, "%2d / %d  !", c.Score, c.Max)
		} else {
			fmt.Fprintf(&buf, "%2d / %d", c.Score, c.Max)
		}
		fmt.Fprintln(&buf)
	}

	for _, p := range r.Content.Description {
		fmt.Fprintf(&buf, "\n%s\n", p)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Markdown renders r as a Markdown document.
func Markdown(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "## %s\n\n", r.Content.Title)
	fmt.Fprintf(&b, "**Total:** %d / %d", r.Total, r.TotalMax)
	if r.Content.ScoreRange != "" {
		fmt.Fprintf(&b, " (%s)", r.Content.ScoreRange)
	}
	b.WriteString("\n\n")

	b.WriteString("| Section | Score | Max |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, c := range r.Cards {
		score := fmt.Sprintf("%d", c.Score)
		if c.Highlight {
			score = "**" + score + "**"
		}
		fmt.Fprintf(&b, "| %s | %s | %d |\n", escapeCell(c.Name), score, c.Max)
	}

	for _, p := range r.Content.Description {
		fmt.Fprintf(&b, "\n%s\n", p)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders r as an HTML fragment via its Markdown form.
func HTML(r Report) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(r)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
