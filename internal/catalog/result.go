package catalog

// ResultType is the outcome category of a completed assessment.
type ResultType string

const (
	ResultHighRisk             ResultType = "HIGH_RISK"
	ResultPreparationNeeded    ResultType = "PREPARATION_NEEDED"
	ResultStrategicResignation ResultType = "STRATEGIC_RESIGNATION"
)

// AllResultTypes returns every result type from most to least severe.
func AllResultTypes() []ResultType {
	return []ResultType{ResultHighRisk, ResultPreparationNeeded, ResultStrategicResignation}
}

// Valid reports whether r is one of the known result types.
func (r ResultType) Valid() bool {
	switch r {
	case ResultHighRisk, ResultPreparationNeeded, ResultStrategicResignation:
		return true
	default:
		return false
	}
}

// Tone is the styling token attached to result copy.
type Tone string

const (
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
)

// ResultContent is the display copy for one result type.
type ResultContent struct {
	Title       string
	ScoreRange  string
	Tone        Tone
	Description []string
}

// Results maps each result type to its display copy.
type Results map[ResultType]ResultContent

// Lookup returns the content for r. A missing entry yields a content
// whose title is the raw result type.
func (rs Results) Lookup(r ResultType) ResultContent {
	if c, ok := rs[r]; ok {
		return c
	}
	return ResultContent{Title: string(r)}
}
