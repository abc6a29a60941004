package variant

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quitcheck/internal/assessment"
	"github.com/abhisek/quitcheck/internal/catalog"
)

// SupportedFormat is the major format version this build understands.
const SupportedFormat = "v1"

// DefaultName is the variant used when none is configured.
const DefaultName = "survival"

var (
	// ErrUnknownVariant is returned by Load for a name with no embedded file.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnsupportedFormat is returned for documents whose format version
	// is not readable by this build.
	ErrUnsupportedFormat = errors.New("unsupported variant format")
)

//go:embed variants/*.yaml
var embedded embed.FS

type document struct {
	Format  string `yaml:"format"`
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Token   string `yaml:"token"`
	Delays  struct {
		Advance string `yaml:"advance"`
		Analyze string `yaml:"analyze"`
	} `yaml:"delays"`
	Scoring struct {
		DefaultPoints string                    `yaml:"default_points"`
		Sections      map[string]sectionScoring `yaml:"sections"`
		Thresholds    struct {
			TotalHigh   int            `yaml:"total_high"`
			TotalLow    int            `yaml:"total_low"`
			SectionHigh map[string]int `yaml:"section_high"`
			SectionLow  map[string]int `yaml:"section_low"`
		} `yaml:"thresholds"`
	} `yaml:"scoring"`
	Sections []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"sections"`
	Questions []struct {
		ID      int      `yaml:"id"`
		Section string   `yaml:"section"`
		Text    string   `yaml:"text"`
		Options []string `yaml:"options"`
	} `yaml:"questions"`
	Results map[string]struct {
		Title       string   `yaml:"title"`
		ScoreRange  string   `yaml:"score_range"`
		Tone        string   `yaml:"tone"`
		Description []string `yaml:"description"`
	} `yaml:"results"`
}

type sectionScoring struct {
	Reversed  bool  `yaml:"reversed"`
	Points    []int `yaml:"points"`
	Highlight *int  `yaml:"highlight"`
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*Variant{}
)

// Load returns the embedded variant called name. Built variants are
// cached; callers must not modify them.
func Load(name string) (*Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if v, ok := cache[name]; ok {
		return v, nil
	}

	data, err := embedded.ReadFile(path.Join("variants", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", name, err)
	}
	if v.Name != name {
		return nil, fmt.Errorf("variant %s: document is named %q", name, v.Name)
	}
	cache[name] = v
	return v, nil
}

// Names lists the embedded variants in alphabetical order.
func Names() []string {
	entries, err := embedded.ReadDir("variants")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// All loads every embedded variant.
func All() ([]*Variant, error) {
	var out []*Variant
	for _, name := range Names() {
		v, err := Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Parse validates and builds a variant from a YAML document.
func Parse(data []byte) (*Variant, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := checkFormat(doc.Format); err != nil {
		return nil, err
	}
	return build(doc)
}

func checkFormat(format string) error {
	if !semver.IsValid(format) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedFormat, format)
	}
	if semver.Major(format) != SupportedFormat {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedFormat, format, SupportedFormat)
	}
	return nil
}

func build(doc document) (*Variant, error) {
	sections := make([]catalog.Section, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		sections = append(sections, catalog.Section{ID: catalog.SectionID(s.ID), Name: s.Name})
	}

	questions := make([]catalog.Question, 0, len(doc.Questions))
	for _, q := range doc.Questions {
		var opts [catalog.OptionCount]catalog.Option
		for i, label := range q.Options {
			sym, ok := catalog.SymbolAt(i)
			if !ok {
				return nil, fmt.Errorf("question %d: more than %d options", q.ID, catalog.OptionCount)
			}
			opts[i] = catalog.Option{ID: sym, Label: label}
		}
		questions = append(questions, catalog.Question{
			ID:      q.ID,
			Section: catalog.SectionID(q.Section),
			Text:    q.Text,
			Options: opts,
		})
	}

	cat, err := catalog.New(sections, questions)
	if err != nil {
		return nil, err
	}

	rules, highlights, err := buildRules(doc, cat)
	if err != nil {
		return nil, err
	}
	engine, err := assessment.New(cat, rules)
	if err != nil {
		return nil, err
	}

	results := make(catalog.Results, len(doc.Results))
	for k, r := range doc.Results {
		results[catalog.ResultType(k)] = catalog.ResultContent{
			Title:       r.Title,
			ScoreRange:  r.ScoreRange,
			Tone:        catalog.Tone(r.Tone),
			Description: r.Description,
		}
	}

	v := &Variant{
		Name:       doc.Name,
		Title:      doc.Title,
		Tagline:    doc.Tagline,
		Format:     doc.Format,
		Token:      doc.Token,
		Catalog:    cat,
		Engine:     engine,
		Results:    results,
		highlights: highlights,
	}
	if v.AdvanceDelay, v.advanceSet, err = parseDelay(doc.Delays.Advance); err != nil {
		return nil, fmt.Errorf("delays.advance: %w", err)
	}
	if v.AnalyzeDelay, v.analyzeSet, err = parseDelay(doc.Delays.Analyze); err != nil {
		return nil, fmt.Errorf("delays.analyze: %w", err)
	}
	return v, nil
}

func buildRules(doc document, cat *catalog.Catalog) (assessment.Rules, map[catalog.SectionID]int, error) {
	base := assessment.Ascending
	if doc.Scoring.DefaultPoints == "descending" {
		base = assessment.Descending
	}

	rules := assessment.Rules{
		Points: make(map[catalog.SectionID]assessment.PointsTable),
		Thresholds: assessment.Thresholds{
			TotalHigh:   doc.Scoring.Thresholds.TotalHigh,
			TotalLow:    doc.Scoring.Thresholds.TotalLow,
			SectionHigh: limits(doc.Scoring.Thresholds.SectionHigh),
			SectionLow:  limits(doc.Scoring.Thresholds.SectionLow),
		},
	}
	for _, s := range cat.Sections() {
		rules.Points[s.ID] = base
	}

	highlights := map[catalog.SectionID]int{}
	for id, sc := range doc.Scoring.Sections {
		sid := catalog.SectionID(id)
		if !cat.HasSection(sid) {
			return assessment.Rules{}, nil, fmt.Errorf("scoring for unknown section %q", id)
		}
		table := base
		if len(sc.Points) > 0 {
			if len(sc.Points) != catalog.OptionCount {
				return assessment.Rules{}, nil, fmt.Errorf("section %q: %d point values, want %d", id, len(sc.Points), catalog.OptionCount)
			}
			copy(table[:], sc.Points)
		}
		if sc.Reversed {
			table = table.Reversed()
		}
		rules.Points[sid] = table
		if sc.Highlight != nil {
			highlights[sid] = *sc.Highlight
		}
	}
	return rules, highlights, nil
}

func limits(in map[string]int) map[catalog.SectionID]int {
	out := make(map[catalog.SectionID]int, len(in))
	for k, v := range in {
		out[catalog.SectionID(k)] = v
	}
	return out
}

func parseDelay(s string) (time.Duration, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}
