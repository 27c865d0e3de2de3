package routing

import (
	"context"
	"fmt"
	"strings"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/observability"
)

const classifyTemperature = 0.0

// Classifier routes questions to a domain label with a single model call.
type Classifier struct {
	completer domain.Completer
	settings  domain.AgentSettings
	prompt    string
}

// NewClassifier creates a new classifier (DI constructor).
func NewClassifier(completer domain.Completer, settings domain.AgentSettings) *Classifier {
	return &Classifier{
		completer: completer,
		settings:  settings,
		prompt:    SystemPrompt(),
	}
}

// SystemPrompt builds the router instruction enumerating every label and its description.
func SystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a router that assigns ONE domain label to each question.\n")
	b.WriteString("Valid labels (all lowercase) are:\n")
	for _, label := range domain.Labels() {
		fmt.Fprintf(&b, "  - %s: %s\n", label, domain.ProfileFor(label).Description)
	}
	b.WriteString("Reply with ONLY the label word, nothing else.")
	return b.String()
}

// Route classifies question. Any reply that names no label, including a failed call, yields common_sense.
func (c *Classifier) Route(ctx context.Context, question string) domain.Label {
	result := c.completer.Complete(ctx, &domain.CompletionRequest{
		Question:     fmt.Sprintf("Question:\n%s\n\nDomain label:", question),
		SystemPrompt: c.prompt,
		Model:        c.settings.Model,
		Temperature:  classifyTemperature,
		Timeout:      c.settings.Timeout,
	})

	label := ParseLabel(result.Content())

	observability.FromContext(ctx).Debug("question classified",
		observability.String("label", label.String()),
		observability.Bool("completion_ok", result.OK()),
	)

	return label
}

// ParseLabel returns the first label, in classification order, contained in the lower-cased reply.
func ParseLabel(reply string) domain.Label {
	raw := strings.ToLower(strings.TrimSpace(reply))

	for _, label := range domain.Labels() {
		if strings.Contains(raw, string(label)) {
			return label
		}
	}

	return domain.DefaultLabel
}
