package main

import (
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	verbose     bool
	backendFlag string
)

// rootCmd is the base command for answerer.
var rootCmd = &cobra.Command{
	Use:   "answerer",
	Short: "Answer questions with domain-conditioned prompts against a chat completions endpoint",
	Long: `Answerer routes each question to one of five domains (math, coding,
future_prediction, planning, common_sense), picks that domain's instruction
prompt, makes a single chat completion call and cleans the reply into a final
answer string.

Endpoint settings come from the environment (or a .env file):
  OPENAI_API_KEY, API_BASE, MODEL_NAME, COMPLETION_TIMEOUT, AGENT_BACKEND`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "",
		"completion backend: http, openai or echo (overrides AGENT_BACKEND)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(serveCmd)
}
