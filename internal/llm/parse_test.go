package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-mentor/internal/core"
)

const validPayload = `{
	"language": "javascript",
	"issues": [
		{"type": "bug", "severity": "high", "line": 3, "description": "off-by-one in loop bound", "suggestion": "use < instead of <="},
		{"type": "style", "severity": "low", "description": "inconsistent naming", "suggestion": "use camelCase"}
	],
	"optimizedCode": "const f = () => {};",
	"explanation": "Rewrote as an arrow function.",
	"documentation": "## Usage\n\nCall f().",
	"overallScore": 7.5,
	"scores": {"quality": 7, "readability": 8, "optimization": 6, "security": 9, "technicalDebt": 7, "styleConsistency": 8},
	"complexity": {"time": "O(n)", "space": "O(1)", "cyclomatic": 2}
}`

func TestParseReviewResult_Valid(t *testing.T) {
	result, err := parseReviewResult(validPayload)
	require.NoError(t, err)

	assert.Equal(t, "javascript", result.Language)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, 3, result.Issues[0].Line)
	assert.Equal(t, 0, result.Issues[1].Line, "line is optional")
	assert.Equal(t, "const f = () => {};", result.OptimizedCode)
	assert.InDelta(t, 7.5, result.OverallScore, 0.001)
	assert.InDelta(t, 9.0, result.Scores.Security, 0.001)
	assert.Equal(t, core.Complexity{Time: "O(n)", Space: "O(1)", Cyclomatic: 2}, result.Complexity)
}

func TestParseReviewResult_StripsCodeFence(t *testing.T) {
	result, err := parseReviewResult("```json\n" + validPayload + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "javascript", result.Language)
}

func TestParseReviewResult_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not JSON", payload: "the model felt chatty today"},
		{name: "missing language", payload: `{"issues":[],"optimizedCode":"x","explanation":"e","documentation":"d","overallScore":5,"scores":{"quality":5,"readability":5,"optimization":5,"security":5,"technicalDebt":5,"styleConsistency":5},"complexity":{"time":"O(1)","space":"O(1)","cyclomatic":1}}`},
		{name: "missing complexity", payload: `{"language":"go","issues":[],"optimizedCode":"x","explanation":"e","documentation":"d","overallScore":5,"scores":{"quality":5,"readability":5,"optimization":5,"security":5,"technicalDebt":5,"styleConsistency":5}}`},
		{name: "missing optimizedCode", payload: `{"language":"go","issues":[],"explanation":"e","documentation":"d","overallScore":5,"scores":{"quality":5,"readability":5,"optimization":5,"security":5,"technicalDebt":5,"styleConsistency":5},"complexity":{"time":"O(1)","space":"O(1)","cyclomatic":1}}`},
		{name: "incomplete scores object", payload: `{"language":"go","issues":[],"optimizedCode":"x","explanation":"e","documentation":"d","overallScore":5,"scores":{"quality":5},"complexity":{"time":"O(1)","space":"O(1)","cyclomatic":1}}`},
		{name: "issue missing suggestion", payload: `{"language":"go","issues":[{"type":"bug","severity":"high","description":"d"}],"optimizedCode":"x","explanation":"e","documentation":"d","overallScore":5,"scores":{"quality":5,"readability":5,"optimization":5,"security":5,"technicalDebt":5,"styleConsistency":5},"complexity":{"time":"O(1)","space":"O(1)","cyclomatic":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseReviewResult(tt.payload)
			var malformedErr *core.MalformedResponseError
			assert.ErrorAs(t, err, &malformedErr)
		})
	}
}
