package batch

import (
	"context"
	"strings"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/observability"
)

const generateProgressEvery = 200

// FastAnswerer is the production answering path.
type FastAnswerer interface {
	AnswerFast(ctx context.Context, question string, label *string) string
}

// Generator answers a question file one question at a time.
type Generator struct {
	agent  FastAnswerer
	events domain.EventPublisher
}

// NewGenerator creates a new generator (DI constructor).
func NewGenerator(agent FastAnswerer, events domain.EventPublisher) *Generator {
	return &Generator{
		agent:  agent,
		events: events,
	}
}

// Generate returns one answer per question, in order. Failed calls produce empty outputs.
func (g *Generator) Generate(ctx context.Context, questions []Question) []Answer {
	if observability.GetRunID(ctx) == "" {
		ctx = observability.WithRunID(ctx, observability.GenerateRunID())
	}

	total := len(questions)
	answers := make([]Answer, 0, total)

	for idx, question := range questions {
		output := g.agent.AnswerFast(ctx, question.Input, question.Domain)
		answers = append(answers, Answer{Output: strings.TrimSpace(output)})

		done := idx + 1
		if done%generateProgressEvery == 0 || done == total {
			g.publish(ctx, "batch.progress", map[string]interface{}{
				"done":  done,
				"total": total,
			})
		}
	}

	return answers
}

func (g *Generator) publish(ctx context.Context, event string, data map[string]interface{}) {
	if g.events != nil {
		g.events.Publish(ctx, event, data)
	}
}
