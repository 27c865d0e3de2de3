package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/answerer/internal/batch"
	"github.com/davidbz/answerer/internal/domain"
)

const (
	defaultQuestionsPath = "cse_476_final_project_test_data.json"
	defaultAnswersPath   = "cse_476_final_project_answers.json"
)

var (
	generateInput  string
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Answer every question in a file and write the answer file",
	Long: `Answer every question in the input file with the fast pipeline, write
the answers as a JSON array of {"output": ...} records, then re-read the
written file and validate it against the questions.

Exit codes:
  0  Answers written and validated
  1  Input unreadable or output not writable
  2  Written file failed validation`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateInput, "input", defaultQuestionsPath, "questions file")
	generateCmd.Flags().StringVar(&generateOutput, "output", defaultAnswersPath, "answers file to write")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	questions, err := batch.LoadQuestions(generateInput)
	if err != nil {
		return exitError(ExitInvalidArgs, "failed to load questions: %v", err)
	}

	var answers []batch.Answer
	err = buildContainer().Invoke(func(generator *batch.Generator, completer domain.Completer) {
		answers = generator.Generate(withBackend(cmd.Context(), completer), questions)
	})
	if err != nil {
		return err
	}

	if err := batch.WriteAnswers(generateOutput, answers); err != nil {
		return exitError(ExitInvalidArgs, "failed to write answers: %v", err)
	}

	written, err := batch.LoadRawAnswers(generateOutput)
	if err != nil {
		return exitError(ExitValidationFailure, "failed to re-read answers: %v", err)
	}
	if err := batch.Validate(questions, written); err != nil {
		return exitError(ExitValidationFailure, "validation failed: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d answers to %s and validated format successfully.\n",
		len(answers), generateOutput)
	return nil
}
