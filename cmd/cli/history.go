package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent review history records, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of records to show (capped at 100)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	env, err := newCLIEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	records, err := env.store.List(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(records) == 0 {
		dimColor.Println("No review history yet.")
		return nil
	}

	titleColor.Printf("Review history (%d)\n", len(records))
	for _, rec := range records {
		boldColor.Printf("#%d ", rec.ID)
		fmt.Printf("%s  %s  time %s space %s cyclomatic %d  ",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Language,
			rec.TimeComplexity, rec.SpaceComplexity, rec.CyclomaticComplexity)
		dimColor.Printf("%.8s\n", rec.ContentHash)
	}

	return nil
}
