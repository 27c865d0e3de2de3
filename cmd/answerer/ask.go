package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/answerer/internal/domain"
)

var (
	askDomain string
	askFull   bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a single question",
	Long: `Answer a single question and print the final answer.

Without --domain the question is classified first. --full runs the
exploratory pipeline (classify, solve, review) instead of the fast one.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askDomain, "domain", "", "domain label to use instead of classifying")
	askCmd.Flags().BoolVar(&askFull, "full", false, "run the classify, solve and review pipeline")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	var label *string
	if cmd.Flags().Changed("domain") {
		label = &askDomain
	}
	if askFull && label != nil {
		return exitError(ExitInvalidArgs, "--domain cannot be combined with --full")
	}

	return buildContainer().Invoke(func(agent *domain.Agent, completer domain.Completer) {
		ctx := withBackend(cmd.Context(), completer)

		var answer string
		if askFull {
			answer = agent.AnswerFull(ctx, question)
		} else {
			answer = agent.AnswerFast(ctx, question, label)
		}

		fmt.Fprintln(cmd.OutOrStdout(), answer)
	})
}
