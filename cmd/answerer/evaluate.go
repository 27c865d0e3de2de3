package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidbz/answerer/internal/batch"
	"github.com/davidbz/answerer/internal/domain"
)

const defaultDevPath = "cse476_final_project_dev_data.json"

var (
	evaluateInput string
	evaluatePause time.Duration
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score the full pipeline against a labeled dev set",
	Long: `Run the classify, solve and review pipeline over every item of a labeled
dev set and report how many answers match the expected output after
whitespace and case normalization.`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateInput, "input", defaultDevPath, "labeled dev set")
	evaluateCmd.Flags().DurationVar(&evaluatePause, "pause", batch.DefaultPause, "wait between items")
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	items, err := batch.LoadLabeledQuestions(evaluateInput)
	if err != nil {
		return exitError(ExitInvalidArgs, "failed to load dev set: %v", err)
	}

	var report batch.Report
	err = buildContainer().Invoke(func(agent *domain.Agent, events domain.EventPublisher, completer domain.Completer) {
		evaluator := batch.NewEvaluator(agent, events, evaluatePause)
		report = evaluator.Evaluate(withBackend(cmd.Context(), completer), items)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "FINAL: %d/%d correct (~%.2f%%)\n",
		report.Correct, report.Total, report.Accuracy()*100)
	return nil
}
