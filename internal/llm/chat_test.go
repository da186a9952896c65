package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/sevigo/code-mentor/internal/core"
)

func newTestAssistant(t *testing.T, gen Generator) *Assistant {
	t.Helper()
	prompts, err := NewPromptManager()
	require.NoError(t, err)
	return NewAssistant(gen, prompts, testConfig(), testLogger())
}

func contentText(c *genai.Content) string {
	if len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[0].Text
}

func TestAssistant_Ask(t *testing.T) {
	gen := &fakeGenerator{chatResponse: "Use a map instead of a slice."}
	assistant := newTestAssistant(t, gen)

	answer, err := assistant.Ask(context.Background(), core.ChatRequest{
		Code:     "function f(){}",
		Question: "Why is the lookup slow?",
	})
	require.NoError(t, err)

	assert.Equal(t, "Use a map instead of a slice.", answer)
	assert.Contains(t, gen.lastSystem, "function f(){}")
	require.Len(t, gen.lastContents, 1)
	assert.Equal(t, "Why is the lookup slow?", contentText(gen.lastContents[0]))
}

func TestAssistant_ReplaysTranscriptVerbatim(t *testing.T) {
	gen := &fakeGenerator{chatResponse: "Because allocations dominate."}
	assistant := newTestAssistant(t, gen)

	history := []core.ChatMessage{
		{Role: core.RoleUser, Text: "Why is the lookup slow?"},
		{Role: core.RoleModel, Text: "Use a map instead of a slice."},
	}

	_, err := assistant.Ask(context.Background(), core.ChatRequest{
		Question: "And why is insertion slow too?",
		History:  history,
	})
	require.NoError(t, err)

	// The full prior exchange precedes the new question, order preserved.
	require.Len(t, gen.lastContents, 3)
	assert.Equal(t, string(genai.RoleUser), gen.lastContents[0].Role)
	assert.Equal(t, "Why is the lookup slow?", contentText(gen.lastContents[0]))
	assert.Equal(t, string(genai.RoleModel), gen.lastContents[1].Role)
	assert.Equal(t, "Use a map instead of a slice.", contentText(gen.lastContents[1]))
	assert.Equal(t, string(genai.RoleUser), gen.lastContents[2].Role)
	assert.Equal(t, "And why is insertion slow too?", contentText(gen.lastContents[2]))
}

func TestAssistant_EmptyAnswerFallsBack(t *testing.T) {
	gen := &fakeGenerator{chatResponse: "  \n"}
	assistant := newTestAssistant(t, gen)

	answer, err := assistant.Ask(context.Background(), core.ChatRequest{Question: "Hello?"})
	require.NoError(t, err)
	assert.Equal(t, followUpFallback, answer)
}

func TestAssistant_EmptyQuestion(t *testing.T) {
	gen := &fakeGenerator{}
	assistant := newTestAssistant(t, gen)

	_, err := assistant.Ask(context.Background(), core.ChatRequest{Question: "   "})

	var validationErr *core.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, gen.calls)
}

func TestAssistant_ErrorLogInSystemInstruction(t *testing.T) {
	gen := &fakeGenerator{chatResponse: "That trace points at a nil map."}
	assistant := newTestAssistant(t, gen)

	_, err := assistant.Ask(context.Background(), core.ChatRequest{
		Question: "What does this trace mean?",
		ErrorLog: "panic: assignment to entry in nil map",
	})
	require.NoError(t, err)
	assert.Contains(t, gen.lastSystem, "panic: assignment to entry in nil map")
}
