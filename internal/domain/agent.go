package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/answerer/internal/observability"
)

// fastTemperature is used by every fast-path call.
const fastTemperature = 0.0

// AgentSettings carries the model parameters shared by every call the agent makes.
type AgentSettings struct {
	Model   string
	Timeout time.Duration
}

// Agent answers questions with domain-conditioned prompts.
// It holds no mutable state, so one Agent may serve concurrent callers.
type Agent struct {
	completer Completer
	router    Router
	settings  AgentSettings
}

// NewAgent creates a new agent (DI constructor).
func NewAgent(completer Completer, router Router, settings AgentSettings) *Agent {
	return &Agent{
		completer: completer,
		router:    router,
		settings:  settings,
	}
}

// Classify returns the domain label the router assigns to question.
func (a *Agent) Classify(ctx context.Context, question string) Label {
	return a.router.Route(ctx, question)
}

// ResolveLabel normalizes a supplied label, or classifies the question when none is supplied.
func (a *Agent) ResolveLabel(ctx context.Context, question string, label *string) Label {
	if label == nil {
		return a.Classify(ctx, question)
	}
	return NormalizeLabel(*label)
}

// AnswerFast is the production path: one terse-prompt call per question
// (plus a classifier call when no label is supplied). It never fails; a failed
// call yields an empty answer.
func (a *Agent) AnswerFast(ctx context.Context, question string, label *string) string {
	resolved := a.ResolveLabel(ctx, question, label)
	ctx = observability.WithDomainLabel(ctx, resolved.String())

	profile := ProfileFor(resolved)
	result := a.call(ctx, question, profile.Terse, fastTemperature)

	answer := profile.Clean(strings.TrimSpace(result.Content()))

	observability.FromContext(ctx).Debug("fast answer produced",
		observability.Bool("completion_ok", result.OK()),
		observability.Int("answer_length", len(answer)),
	)

	return answer
}

// AnswerFull runs the exploratory pipeline: classify, solve with the verbose
// prompt, then review. Three sequential calls.
func (a *Agent) AnswerFull(ctx context.Context, question string) string {
	label := a.Classify(ctx, question)
	ctx = observability.WithDomainLabel(ctx, label.String())

	profile := ProfileFor(label)
	draft := a.Solve(ctx, question, profile)

	return strings.TrimSpace(a.Refine(ctx, question, draft, profile))
}

// Solve issues the verbose solver call for profile and extracts a draft answer.
func (a *Agent) Solve(ctx context.Context, question string, profile Profile) string {
	result := a.call(ctx, question, profile.Verbose, profile.SolverTemperature)
	return profile.ExtractDraft(result.Content())
}

// Refine asks the model to repeat or correct draft. An empty review keeps the draft.
func (a *Agent) Refine(ctx context.Context, question, draft string, profile Profile) string {
	user := fmt.Sprintf("QUESTION:\n%s\n\nDRAFT ANSWER:\n%s\n\nFINAL ANSWER:", question, draft)

	result := a.call(ctx, user, ReviewPrompt, profile.ReviewTemperature)
	if text := strings.TrimSpace(result.Content()); text != "" {
		return text
	}
	return draft
}

func (a *Agent) call(ctx context.Context, question, system string, temperature float64) CompletionResult {
	return a.completer.Complete(ctx, &CompletionRequest{
		Question:     question,
		SystemPrompt: system,
		Model:        a.settings.Model,
		Temperature:  temperature,
		Timeout:      a.settings.Timeout,
	})
}
