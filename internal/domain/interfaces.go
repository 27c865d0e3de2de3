package domain

import "context"

// Completer performs one chat completion call.
// Implementations never return nil and never retry.
type Completer interface {
	// Complete sends a completion request and returns its outcome.
	Complete(ctx context.Context, req *CompletionRequest) CompletionResult

	// Name returns the backend identifier.
	Name() string
}

// CompleterRegistry manages available completion backends.
type CompleterRegistry interface {
	// Register adds a completer to the registry.
	Register(ctx context.Context, completer Completer) error

	// Get retrieves a completer by name.
	Get(ctx context.Context, name string) (Completer, error)

	// List returns all registered backend names.
	List(ctx context.Context) ([]string, error)
}

// Router assigns a domain label to a question.
type Router interface {
	// Route classifies the question. It always returns a canonical label.
	Route(ctx context.Context, question string) Label
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
