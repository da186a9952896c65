package llm

import "google.golang.org/genai"

// reviewResponseSchema declares the strict output shape the service must
// return for a review: detected language, issues, improved code, explanation,
// documentation, overall score, the fixed sub-scores object and the fixed
// complexity object. The service is asked for JSON matching this schema; the
// payload is still validated after parsing.
func reviewResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"language": {
				Type:        genai.TypeString,
				Description: "Detected or declared source language of the code.",
			},
			"issues": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type":        {Type: genai.TypeString},
						"severity":    {Type: genai.TypeString},
						"line":        {Type: genai.TypeInteger},
						"description": {Type: genai.TypeString},
						"suggestion":  {Type: genai.TypeString},
					},
					Required: []string{"type", "severity", "description", "suggestion"},
				},
			},
			"optimizedCode": {
				Type:        genai.TypeString,
				Description: "Full improved or converted version of the code.",
			},
			"explanation": {
				Type:        genai.TypeString,
				Description: "Markdown explanation of the changes.",
			},
			"documentation": {
				Type:        genai.TypeString,
				Description: "Markdown usage documentation for the improved code.",
			},
			"overallScore": {Type: genai.TypeNumber},
			"scores": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"quality":          {Type: genai.TypeNumber},
					"readability":      {Type: genai.TypeNumber},
					"optimization":     {Type: genai.TypeNumber},
					"security":         {Type: genai.TypeNumber},
					"technicalDebt":    {Type: genai.TypeNumber},
					"styleConsistency": {Type: genai.TypeNumber},
				},
				Required: []string{"quality", "readability", "optimization", "security", "technicalDebt", "styleConsistency"},
			},
			"complexity": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"time":       {Type: genai.TypeString},
					"space":      {Type: genai.TypeString},
					"cyclomatic": {Type: genai.TypeInteger},
				},
				Required: []string{"time", "space", "cyclomatic"},
			},
		},
		Required: []string{
			"language", "issues", "optimizedCode", "explanation",
			"documentation", "overallScore", "scores", "complexity",
		},
	}
}
