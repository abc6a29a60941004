package mcpserver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/quitcheck/internal/catalog"
	"github.com/abhisek/quitcheck/internal/logger"
	"github.com/abhisek/quitcheck/internal/report"
	"github.com/abhisek/quitcheck/internal/variant"
)

// ListVariantsTool handles the list_variants MCP tool.
type ListVariantsTool struct{}

// NewListVariantsTool creates a ListVariantsTool.
func NewListVariantsTool() *ListVariantsTool {
	return &ListVariantsTool{}
}

// Definition returns the MCP tool definition for list_variants.
func (t *ListVariantsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_variants",
		mcp.WithDescription("List the questionnaires built into quitcheck."),
	)
}

// Handle processes the list_variants tool call.
func (t *ListVariantsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all, err := variant.All()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load variants: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Variants (%d)\n\n", len(all))
	for _, v := range all {
		fmt.Fprintf(&b, "- **%s**: %s (%d questions, %d sections)\n",
			v.Name, v.Title, v.Catalog.Len(), len(v.Catalog.Sections()))
	}
	return mcp.NewToolResultText(b.String()), nil
}

// DescribeVariantTool handles the describe_variant MCP tool.
type DescribeVariantTool struct{}

// NewDescribeVariantTool creates a DescribeVariantTool.
func NewDescribeVariantTool() *DescribeVariantTool {
	return &DescribeVariantTool{}
}

// Definition returns the MCP tool definition for describe_variant.
func (t *DescribeVariantTool) Definition() mcp.Tool {
	return mcp.NewTool("describe_variant",
		mcp.WithDescription(
			"Show a questionnaire's sections, thresholds and questions in presentation order.",
		),
		mcp.WithString("variant",
			mcp.Required(),
			mcp.Description("Variant name, e.g. survival"),
		),
		mcp.WithBoolean("questions",
			mcp.Description("Include the full question text and options (default: true)"),
		),
	)
}

// Handle processes the describe_variant tool call.
func (t *DescribeVariantTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("variant", "")
	if name == "" {
		return mcp.NewToolResultError("'variant' is required"), nil
	}
	v, err := variant.Load(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	th := v.Thresholds()
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", v.Title, v.Name)
	if v.Tagline != "" {
		fmt.Fprintf(&b, "%s\n\n", v.Tagline)
	}
	fmt.Fprintf(&b, "- **Total**: max %d, high risk at >= %d, strategic at <= %d\n\n",
		v.Engine.TotalMax(), th.TotalHigh, th.TotalLow)

	b.WriteString("## Sections\n\n")
	for _, s := range v.Catalog.Sections() {
		fmt.Fprintf(&b, "- **%s** `%s`: %d questions, max %d", s.Name, s.ID, v.Catalog.CountIn(s.ID), v.Engine.SectionMax(s.ID))
		if hi, ok := th.HighFor(s.ID); ok {
			fmt.Fprintf(&b, ", high >= %d", hi)
		}
		if lo, ok := th.LowFor(s.ID); ok {
			fmt.Fprintf(&b, ", low <= %d", lo)
		}
		b.WriteString("\n")
	}

	if req.GetBool("questions", true) {
		b.WriteString("\n## Questions\n")
		for _, q := range v.Catalog.Questions() {
			fmt.Fprintf(&b, "\n%d. [%s] %s\n", q.ID, q.Section, q.Text)
			for _, o := range q.Options {
				fmt.Fprintf(&b, "   - %s. %s\n", o.ID, o.Label)
			}
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// ScoreAnswersTool handles the score_answers MCP tool.
type ScoreAnswersTool struct {
	log logger.Logger
}

// NewScoreAnswersTool creates a ScoreAnswersTool.
func NewScoreAnswersTool(log logger.Logger) *ScoreAnswersTool {
	return &ScoreAnswersTool{log: log}
}

// Definition returns the MCP tool definition for score_answers.
func (t *ScoreAnswersTool) Definition() mcp.Tool {
	return mcp.NewTool("score_answers",
		mcp.WithDescription(
			"Score a set of answers and return the outcome with per-section subtotals. "+
				"Answers are one letter A-D per question in presentation order; use '-' to skip a question.",
		),
		mcp.WithString("variant",
			mcp.Required(),
			mcp.Description("Variant name, e.g. survival"),
		),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description("Positional answers, e.g. ABCDA-BC..."),
		),
	)
}

// Handle processes the score_answers tool call.
func (t *ScoreAnswersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("variant", "")
	if name == "" {
		return mcp.NewToolResultError("'variant' is required"), nil
	}
	// Spaces are positional skips, so only line endings are stripped.
	raw := strings.TrimRight(req.GetString("answers", ""), "\r\n")
	if raw == "" {
		return mcp.NewToolResultError("'answers' is required"), nil
	}

	v, err := variant.Load(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	answers, err := v.ParseAnswers(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}
	outcome, err := v.Engine.Evaluate(answers)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	t.log.Info("mcp score", "variant", v.Name, "result", string(outcome.Type), "total", outcome.Breakdown.Total)

	var b strings.Builder
	fmt.Fprintf(&b, "**Result**: `%s`\n\n", outcome.Type)
	b.WriteString(report.Markdown(report.New(v, answers, outcome)))
	if missing := unanswered(v, answers); len(missing) > 0 {
		fmt.Fprintf(&b, "\n_Unanswered questions scored as zero: %s_\n", strings.Join(missing, ", "))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func unanswered(v *variant.Variant, answers map[int]catalog.Symbol) []string {
	var ids []int
	for _, q := range v.Catalog.Questions() {
		if _, ok := answers[q.ID]; !ok {
			ids = append(ids, q.ID)
		}
	}
	sort.Ints(ids)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%d", id)
	}
	return out
}
