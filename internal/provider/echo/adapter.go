// Package echo provides an offline completion backend that echoes the user message back.
// It makes no external calls, which makes it useful for dry runs of the batch
// commands and for wiring tests.
package echo

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/observability"
)

const providerName = "echo"

// Provider implements domain.Completer without network access.
type Provider struct {
	name string
}

// Compile-time check that Provider satisfies the Completer interface.
var _ domain.Completer = (*Provider)(nil)

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		name: providerName,
	}
}

// Complete returns the user message as the completion text.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) domain.CompletionResult {
	if req == nil {
		return domain.CompletionFailure{Message: "request cannot be nil", Status: domain.StatusTransportFailure}
	}

	if err := ctx.Err(); err != nil {
		return domain.CompletionFailure{Message: err.Error(), Status: domain.StatusTransportFailure}
	}

	observability.FromContext(ctx).Debug("echoing request")

	raw, _ := json.Marshal(map[string]interface{}{
		"model":    req.Model,
		"messages": req.Messages(),
	})

	return domain.CompletionSuccess{
		Text:   req.Question,
		Raw:    raw,
		Status: http.StatusOK,
	}
}

// Name returns the backend identifier.
func (p *Provider) Name() string {
	return p.name
}
