package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// validate performs all structural checks on a section list and question set.
// Returns a combined error describing all problems found, or nil if valid.
func validate(sections []Section, questions []Question) error {
	var errs []string

	if len(sections) == 0 {
		errs = append(errs, "no sections defined")
	}
	if len(questions) == 0 {
		errs = append(errs, "no questions defined")
	}

	sectionSet := make(map[SectionID]bool, len(sections))
	for _, s := range sections {
		if s.ID == "" {
			errs = append(errs, "section with empty id")
			continue
		}
		if sectionSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section id: %q", s.ID))
		}
		sectionSet[s.ID] = true
	}

	used := make(map[SectionID]bool, len(sections))
	prevID := 0
	for i, q := range questions {
		if q.ID <= 0 {
			errs = append(errs, fmt.Sprintf("question at index %d has non-positive id %d", i, q.ID))
		} else if q.ID <= prevID {
			errs = append(errs, fmt.Sprintf("question id %d is not greater than preceding id %d", q.ID, prevID))
		}
		if q.ID > prevID {
			prevID = q.ID
		}

		if !sectionSet[q.Section] {
			errs = append(errs, fmt.Sprintf("question %d references unknown section %q", q.ID, q.Section))
		}
		used[q.Section] = true

		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %d has empty text", q.ID))
		}

		for j, want := range Symbols() {
			opt := q.Options[j]
			if opt.ID != want {
				errs = append(errs, fmt.Sprintf("question %d option %d is %q, want %q", q.ID, j, opt.ID, want))
			}
			if strings.TrimSpace(opt.Label) == "" {
				errs = append(errs, fmt.Sprintf("question %d option %s has empty label", q.ID, want))
			}
		}
	}

	for _, s := range sections {
		if s.ID != "" && !used[s.ID] {
			errs = append(errs, fmt.Sprintf("section %q has no questions", s.ID))
		}
	}

	if len(errs) > 0 {
		return errors.New("catalog validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
