package llm

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// PromptKey names one of the embedded prompt templates.
type PromptKey string

const (
	CodeReviewPrompt PromptKey = "code_review"
	FollowUpPrompt   PromptKey = "followup"
)

// PromptManager holds the parsed prompt templates, loaded once at startup
// from the files embedded in the binary.
type PromptManager struct {
	prompts map[PromptKey]*template.Template
}

// NewPromptManager parses every embedded prompt file. The file name without
// the .prompt extension is the key.
func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{prompts: make(map[PromptKey]*template.Template)}

	files, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".prompt") {
			continue
		}

		key := PromptKey(strings.TrimSuffix(file.Name(), ".prompt"))
		content, err := promptFiles.ReadFile("prompts/" + file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", file.Name(), err)
		}

		tmpl, err := template.New(string(key)).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt template %s: %w", file.Name(), err)
		}
		pm.prompts[key] = tmpl
	}

	return pm, nil
}

// Render executes the template for key with the given data.
func (pm *PromptManager) Render(key PromptKey, data any) (string, error) {
	tmpl, ok := pm.prompts[key]
	if !ok {
		return "", fmt.Errorf("no prompt template found for key %q", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %q: %w", key, err)
	}
	return buf.String(), nil
}
