package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/code-mentor/internal/core"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

var (
	reviewMode      string
	reviewStyle     string
	reviewSource    string
	reviewTarget    string
	reviewModel     string
	reviewVerbosity string
	reviewTone      string
	noSave          bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Run an AI code review on a local source file",
	Long: `Run an AI code review on a local source file.

The file content is sent to the configured generative model together with the
selected review options. The result is rendered to the terminal and the
(original, improved) pair is recorded in the review history unless --no-save
is given.

Examples:
  mentor-cli review main.go
  mentor-cli review --mode interview --target python main.go`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVar(&reviewMode, "mode", "student", "review mode: student, interview or industry")
	reviewCmd.Flags().StringVar(&reviewStyle, "style", "default", "implementation style: default, functional, recursive or flat")
	reviewCmd.Flags().StringVar(&reviewSource, "source", "auto", "source language, or 'auto' to detect")
	reviewCmd.Flags().StringVar(&reviewTarget, "target", "", "convert the improved code to this language")
	reviewCmd.Flags().StringVar(&reviewModel, "model", "", "logical or concrete model identifier")
	reviewCmd.Flags().StringVar(&reviewVerbosity, "verbosity", "normal", "explanation verbosity: concise, normal or detailed")
	reviewCmd.Flags().StringVar(&reviewTone, "tone", "neutral", "feedback tone: neutral, friendly or strict")
	reviewCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the result in the review history")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	path := args[0]

	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	env, err := newCLIEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	titleColor.Println("Code Mentor - Review")
	dimColor.Printf("   Target: %s\n\n", path)

	result, err := env.reviewer.Review(ctx, core.ReviewRequest{
		Code:           string(code),
		SourceLanguage: reviewSource,
		TargetLanguage: reviewTarget,
		Mode:           core.ReviewMode(reviewMode),
		Style:          core.ImplStyle(reviewStyle),
		Model:          reviewModel,
		Verbosity:      reviewVerbosity,
		Tone:           reviewTone,
	})
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	printResult(result)

	if !noSave {
		inserted, err := env.store.Record(ctx, core.HistoryEntry{
			OriginalCode: string(code),
			ImprovedCode: result.OptimizedCode,
			Language:     result.Language,
			Complexity:   result.Complexity,
		})
		if err != nil {
			warnColor.Printf("\nCould not save to history: %v\n", err)
		} else if inserted {
			dimColor.Println("\nSaved to history.")
		} else {
			dimColor.Println("\nAlready in history, not saved again.")
		}
	}

	return nil
}

func printResult(result *core.ReviewResult) {
	boldColor.Printf("Language: ")
	fmt.Println(result.Language)
	boldColor.Printf("Overall score: ")
	fmt.Printf("%.1f/10\n", result.OverallScore)
	boldColor.Printf("Complexity: ")
	fmt.Printf("time %s, space %s, cyclomatic %d\n\n",
		result.Complexity.Time, result.Complexity.Space, result.Complexity.Cyclomatic)

	if len(result.Issues) == 0 {
		successColor.Println("No issues found.")
	} else {
		titleColor.Printf("Issues (%d)\n", len(result.Issues))
		for _, issue := range result.Issues {
			severityColor(issue.Severity).Printf("  [%s] ", strings.ToUpper(issue.Severity))
			if issue.Line > 0 {
				dimColor.Printf("line %d ", issue.Line)
			}
			fmt.Printf("%s: %s\n", issue.Type, issue.Description)
			dimColor.Printf("      fix: %s\n", issue.Suggestion)
		}
	}

	fmt.Println()
	titleColor.Println("Improved code")
	fmt.Println(result.OptimizedCode)

	fmt.Println()
	titleColor.Println("Explanation")
	fmt.Print(renderMarkdown(result.Explanation))
}

func severityColor(severity string) *color.Color {
	switch strings.ToLower(severity) {
	case "critical", "high":
		return errorColor
	case "medium":
		return warnColor
	default:
		return successColor
	}
}

// renderMarkdown pretty-prints Markdown for the terminal, falling back to the
// raw text when rendering fails.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md + "\n"
	}
	return out
}
