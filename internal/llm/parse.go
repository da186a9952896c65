package llm

import (
	"encoding/json"
	"strings"

	"github.com/sevigo/code-mentor/internal/core"
)

// reviewPayload mirrors the declared response schema. Required objects are
// pointers so a missing field is distinguishable from a present zero value.
type reviewPayload struct {
	Language      string          `json:"language"`
	Issues        []issuePayload  `json:"issues"`
	OptimizedCode *string         `json:"optimizedCode"`
	Explanation   *string         `json:"explanation"`
	Documentation *string         `json:"documentation"`
	OverallScore  *float64        `json:"overallScore"`
	Scores        *scoresPayload  `json:"scores"`
	Complexity    *complexPayload `json:"complexity"`
}

type issuePayload struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Line        int    `json:"line"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

type scoresPayload struct {
	Quality          *float64 `json:"quality"`
	Readability      *float64 `json:"readability"`
	Optimization     *float64 `json:"optimization"`
	Security         *float64 `json:"security"`
	TechnicalDebt    *float64 `json:"technicalDebt"`
	StyleConsistency *float64 `json:"styleConsistency"`
}

type complexPayload struct {
	Time       *string `json:"time"`
	Space      *string `json:"space"`
	Cyclomatic *int    `json:"cyclomatic"`
}

// parseReviewResult validates the raw service output against the declared
// schema and converts it into a ReviewResult. The payload's shape is never
// trusted: any missing required field fails with a MalformedResponseError.
func parseReviewResult(raw string) (*core.ReviewResult, error) {
	var payload reviewPayload
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &payload); err != nil {
		return nil, &core.MalformedResponseError{Reason: "payload is not valid JSON", Err: err}
	}

	switch {
	case payload.Language == "":
		return nil, &core.MalformedResponseError{Reason: "missing required field 'language'"}
	case payload.OptimizedCode == nil:
		return nil, &core.MalformedResponseError{Reason: "missing required field 'optimizedCode'"}
	case payload.Explanation == nil:
		return nil, &core.MalformedResponseError{Reason: "missing required field 'explanation'"}
	case payload.Documentation == nil:
		return nil, &core.MalformedResponseError{Reason: "missing required field 'documentation'"}
	case payload.OverallScore == nil:
		return nil, &core.MalformedResponseError{Reason: "missing required field 'overallScore'"}
	case payload.Scores == nil:
		return nil, &core.MalformedResponseError{Reason: "missing required field 'scores'"}
	case payload.Complexity == nil:
		return nil, &core.MalformedResponseError{Reason: "missing required field 'complexity'"}
	}

	scores, err := payload.Scores.validate()
	if err != nil {
		return nil, err
	}
	complexity, err := payload.Complexity.validate()
	if err != nil {
		return nil, err
	}

	issues := make([]core.CodeIssue, 0, len(payload.Issues))
	for _, issue := range payload.Issues {
		if issue.Type == "" || issue.Severity == "" || issue.Description == "" || issue.Suggestion == "" {
			return nil, &core.MalformedResponseError{Reason: "issue entry missing a required field"}
		}
		line := issue.Line
		if line < 0 {
			line = 0
		}
		issues = append(issues, core.CodeIssue{
			Type:        issue.Type,
			Severity:    issue.Severity,
			Line:        line,
			Description: issue.Description,
			Suggestion:  issue.Suggestion,
		})
	}

	return &core.ReviewResult{
		Language:      payload.Language,
		Issues:        issues,
		OptimizedCode: *payload.OptimizedCode,
		Explanation:   *payload.Explanation,
		Documentation: *payload.Documentation,
		OverallScore:  *payload.OverallScore,
		Scores:        scores,
		Complexity:    complexity,
	}, nil
}

func (p *scoresPayload) validate() (core.Scores, error) {
	fields := map[string]*float64{
		"quality":          p.Quality,
		"readability":      p.Readability,
		"optimization":     p.Optimization,
		"security":         p.Security,
		"technicalDebt":    p.TechnicalDebt,
		"styleConsistency": p.StyleConsistency,
	}
	for name, v := range fields {
		if v == nil {
			return core.Scores{}, &core.MalformedResponseError{Reason: "scores object missing field '" + name + "'"}
		}
	}
	return core.Scores{
		Quality:          *p.Quality,
		Readability:      *p.Readability,
		Optimization:     *p.Optimization,
		Security:         *p.Security,
		TechnicalDebt:    *p.TechnicalDebt,
		StyleConsistency: *p.StyleConsistency,
	}, nil
}

func (p *complexPayload) validate() (core.Complexity, error) {
	if p.Time == nil || p.Space == nil || p.Cyclomatic == nil {
		return core.Complexity{}, &core.MalformedResponseError{Reason: "complexity object missing a required field"}
	}
	cyclomatic := *p.Cyclomatic
	if cyclomatic < 0 {
		cyclomatic = 0
	}
	return core.Complexity{Time: *p.Time, Space: *p.Space, Cyclomatic: cyclomatic}, nil
}

// stripJSONFence removes a ```json ... ``` wrapping that some models add even
// when asked for a raw JSON payload.
func stripJSONFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return trimmed
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}
