package batch

import (
	"context"
	"strings"
	"time"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/observability"
)

const (
	evaluateProgressEvery = 20

	// DefaultPause is the wait between evaluated items.
	DefaultPause = 200 * time.Millisecond
)

// FullAnswerer is the exploratory answering path.
type FullAnswerer interface {
	AnswerFull(ctx context.Context, question string) string
}

// Report is the outcome of an evaluation run.
type Report struct {
	Total   int
	Correct int
}

// Accuracy returns Correct/Total, or 0 for an empty run.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Evaluator scores the exploratory pipeline against expected outputs.
type Evaluator struct {
	agent  FullAnswerer
	events domain.EventPublisher
	pause  time.Duration
}

// NewEvaluator creates a new evaluator. A zero pause disables waiting between items.
func NewEvaluator(agent FullAnswerer, events domain.EventPublisher, pause time.Duration) *Evaluator {
	return &Evaluator{
		agent:  agent,
		events: events,
		pause:  pause,
	}
}

// Normalize lower-cases s and collapses all whitespace runs to single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Evaluate answers every item sequentially and counts normalized exact matches.
func (e *Evaluator) Evaluate(ctx context.Context, items []LabeledQuestion) Report {
	if observability.GetRunID(ctx) == "" {
		ctx = observability.WithRunID(ctx, observability.GenerateRunID())
	}

	report := Report{Total: len(items)}

	for idx, item := range items {
		prediction := e.agent.AnswerFull(ctx, item.Input)
		if Normalize(prediction) == Normalize(item.ExpectedOutput) {
			report.Correct++
		}

		done := idx + 1
		if done%evaluateProgressEvery == 0 {
			e.publish(ctx, "eval.progress", map[string]interface{}{
				"done":    done,
				"total":   report.Total,
				"correct": report.Correct,
			})
		}

		e.wait(ctx)
	}

	return report
}

func (e *Evaluator) wait(ctx context.Context) {
	if e.pause <= 0 {
		return
	}

	timer := time.NewTimer(e.pause)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (e *Evaluator) publish(ctx context.Context, event string, data map[string]interface{}) {
	if e.events != nil {
		e.events.Publish(ctx, event, data)
	}
}
