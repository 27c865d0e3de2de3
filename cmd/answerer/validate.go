package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/answerer/internal/batch"
)

var (
	validateQuestions string
	validateAnswers   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an answer file against its questions file",
	Long: `Check that the answer file is a JSON array with one record per question,
each carrying a string "output" shorter than 5000 characters.

Exit codes:
  0  Answer file is valid
  1  A file could not be read or is not a JSON array
  2  Answer file violates the format`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateQuestions, "questions", defaultQuestionsPath, "questions file")
	validateCmd.Flags().StringVar(&validateAnswers, "answers", defaultAnswersPath, "answers file")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	questions, err := batch.LoadQuestions(validateQuestions)
	if err != nil {
		return exitError(ExitInvalidArgs, "failed to load questions: %v", err)
	}

	answers, err := batch.LoadRawAnswers(validateAnswers)
	if err != nil {
		return exitError(ExitInvalidArgs, "failed to load answers: %v", err)
	}

	if err := batch.Validate(questions, answers); err != nil {
		return exitError(ExitValidationFailure, "validation failed: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d answers match %d questions.\n", len(answers), len(questions))
	return nil
}
