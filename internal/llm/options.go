package llm

import "github.com/sevigo/code-mentor/internal/core"

// The option tables below are fixed enumerated mappings from a user-facing
// option value to the instruction it contributes to the prompt. They are
// built once and never mutated at runtime.

var modeInstructions = map[core.ReviewMode]string{
	core.ModeStudent:   "Review as a patient teacher: explain every issue in plain language, name the underlying concept, and show how the fix applies it. Prefer clarity over brevity.",
	core.ModeInterview: "Review as a coding-interview coach: optimize for competitive time and space complexity, call out unhandled edge cases, and suggest the approach an interviewer would expect.",
	core.ModeIndustry:  "Review as a senior engineer on a production team: focus on maintainability, error handling, security, and consistency with common team conventions.",
}

var styleInstructions = map[core.ImplStyle]string{
	core.StyleDefault:    "Write the improved code in the idiomatic style of the language.",
	core.StyleFunctional: "Write the improved code in a functional style: pure functions, immutable data, no shared mutable state.",
	core.StyleRecursive:  "Prefer recursive formulations in the improved code where the problem decomposes naturally.",
	core.StyleFlat:       "Keep the improved code flat: minimal nesting, early returns, no deeply chained abstractions.",
}

var verbosityInstructions = map[string]string{
	"concise":  "Keep the explanation short: one or two sentences per issue.",
	"normal":   "Explain each issue with enough detail to act on it.",
	"detailed": "Explain each issue thoroughly, including why it matters and what would happen if left unfixed.",
}

var toneInstructions = map[string]string{
	"neutral":  "Use a neutral, matter-of-fact tone.",
	"friendly": "Use an encouraging, friendly tone; acknowledge what the code does well.",
	"strict":   "Use a strict, no-nonsense tone; do not soften criticism.",
}

// modelAliases maps logical model identifiers offered by the UI to concrete
// backing-service model names. Several logical identifiers may alias the same
// concrete model; unknown identifiers pass through unchanged.
var modelAliases = map[string]string{
	"fast":     "gemini-2.5-flash-lite",
	"balanced": "gemini-2.5-flash",
	"flash":    "gemini-2.5-flash",
	"deep":     "gemini-2.5-pro",
	"max":      "gemini-2.5-pro",
	"pro":      "gemini-2.5-pro",
}

// ResolveModel maps a logical model identifier to the concrete service model
// name, passing unknown identifiers through unchanged.
func ResolveModel(id string) string {
	if concrete, ok := modelAliases[id]; ok {
		return concrete
	}
	return id
}

func modeInstruction(mode core.ReviewMode) string {
	if s, ok := modeInstructions[mode]; ok {
		return s
	}
	return modeInstructions[core.ModeStudent]
}

func styleInstruction(style core.ImplStyle) string {
	if s, ok := styleInstructions[style]; ok {
		return s
	}
	return styleInstructions[core.StyleDefault]
}

func verbosityInstruction(verbosity string) string {
	if s, ok := verbosityInstructions[verbosity]; ok {
		return s
	}
	return verbosityInstructions["normal"]
}

func toneInstruction(tone string) string {
	if s, ok := toneInstructions[tone]; ok {
		return s
	}
	return toneInstructions["neutral"]
}
