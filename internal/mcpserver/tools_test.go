package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quitcheck/internal/logger"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestDefinitions(t *testing.T) {
	assert.Equal(t, "list_variants", NewListVariantsTool().Definition().Name)
	assert.Equal(t, "describe_variant", NewDescribeVariantTool().Definition().Name)

	def := NewScoreAnswersTool(logger.Nop()).Definition()
	assert.Equal(t, "score_answers", def.Name)
	assert.ElementsMatch(t, []string{"variant", "answers"}, def.InputSchema.Required)
}

func TestListVariants(t *testing.T) {
	res, err := NewListVariantsTool().Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(res)
	assert.Contains(t, text, "Variants (3)")
	assert.Contains(t, text, "**survival**")
	assert.Contains(t, text, "20 questions, 4 sections")
}

func TestDescribeVariant(t *testing.T) {
	tool := NewDescribeVariantTool()

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"variant": "readiness"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	text := resultText(res)
	assert.Contains(t, text, "high risk at >= 38")
	assert.Contains(t, text, "`risk`: 4 questions, max 12, high >= 9, low <= 4")
	assert.Contains(t, text, "10. [risk]")

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"variant": "readiness", "questions": false}))
	require.NoError(t, err)
	assert.NotContains(t, resultText(res), "## Questions")
}

func TestDescribeVariant_Errors(t *testing.T) {
	tool := NewDescribeVariantTool()

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{"variant": "nope"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "unknown variant")
}

func TestScoreAnswers(t *testing.T) {
	tool := NewScoreAnswersTool(logger.Nop())

	tests := []struct {
		name    string
		args    map[string]interface{}
		isError bool
		want    []string
	}{
		{
			name: "all highest",
			args: map[string]interface{}{"variant": "survival", "answers": strings.Repeat("A", 20)},
			want: []string{"`HIGH_RISK`", "60 / 60"},
		},
		{
			name: "all lowest",
			args: map[string]interface{}{"variant": "survival", "answers": strings.Repeat("d", 20)},
			want: []string{"`STRATEGIC_RESIGNATION`", "0 / 60"},
		},
		{
			name: "partial",
			args: map[string]interface{}{"variant": "motive", "answers": "AAAA"},
			want: []string{"`STRATEGIC_RESIGNATION`", "Unanswered questions scored as zero: 5, 6"},
		},
		{
			name:    "bad letter",
			args:    map[string]interface{}{"variant": "motive", "answers": "AZ"},
			isError: true,
			want:    []string{"invalid answers"},
		},
		{
			name:    "missing answers",
			args:    map[string]interface{}{"variant": "motive"},
			isError: true,
			want:    []string{"'answers' is required"},
		},
		{
			name:    "unknown variant",
			args:    map[string]interface{}{"variant": "x", "answers": "A"},
			isError: true,
			want:    []string{"unknown variant"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tool.Handle(context.Background(), makeReq(tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.isError, res.IsError)
			text := resultText(res)
			for _, w := range tt.want {
				assert.Contains(t, text, w)
			}
		})
	}
}

func TestScoreAnswers_SpacesSkipLikeDashes(t *testing.T) {
	tool := NewScoreAnswersTool(logger.Nop())
	score := func(answers string) string {
		res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"variant": "survival", "answers": answers}))
		require.NoError(t, err)
		require.False(t, res.IsError, resultText(res))
		return resultText(res)
	}

	dashes := score("------A")
	assert.Contains(t, dashes, "| 现金跑道 | 0 | 18 |")
	assert.Contains(t, dashes, "| 变现速度 | 3 | 18 |")
	assert.Equal(t, dashes, score("      A"))
	assert.Equal(t, dashes, score("------A\n"))
}

func TestNew(t *testing.T) {
	s := New("test", nil)
	require.NotNil(t, s)
}
