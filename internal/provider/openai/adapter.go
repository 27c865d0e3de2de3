// Package openai provides completion backends for OpenAI-compatible
// chat completions endpoints: a raw net/http Client and an adapter over the
// official SDK. Both implement domain.Completer and fold every failure into a
// domain.CompletionFailure.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/observability"
)

const providerName = "openai"

// Provider implements domain.Completer using the OpenAI SDK.
type Provider struct {
	client openai.Client
	name   string
}

// Compile-time check that Provider satisfies the Completer interface.
var _ domain.Completer = (*Provider)(nil)

// NewProvider creates a new OpenAI SDK provider. SDK retries are disabled.
func NewProvider(config Config) (*Provider, error) {
	if config.BaseURL == "" {
		return nil, errors.New("API base URL is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(strings.TrimRight(config.BaseURL, "/") + "/"),
		option.WithMaxRetries(0),
	}

	return &Provider{
		client: openai.NewClient(opts...),
		name:   providerName,
	}, nil
}

// Name returns the backend identifier.
func (p *Provider) Name() string {
	return p.name
}

// Complete sends a completion request through the SDK.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) domain.CompletionResult {
	if req == nil {
		return domain.CompletionFailure{Message: "request cannot be nil", Status: domain.StatusTransportFailure}
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API", observability.String("model", req.Model))

	ctx, cancel := context.WithTimeout(ctx, req.EffectiveTimeout())
	defer cancel()

	var httpResp *http.Response
	resp, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(req),
		option.WithRequestTimeout(req.EffectiveTimeout()),
		option.WithResponseInto(&httpResp),
	)
	if err != nil {
		return p.toFailure(ctx, err)
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	status := http.StatusOK
	if httpResp != nil {
		status = httpResp.StatusCode
	}

	return domain.CompletionSuccess{
		Text:   content,
		Raw:    []byte(resp.RawJSON()),
		Status: status,
	}
}

// toFailure separates API errors, which carry a response, from transport errors.
func (p *Provider) toFailure(ctx context.Context, err error) domain.CompletionFailure {
	logger := observability.FromContext(ctx)

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		logger.Warn("OpenAI API returned error status",
			observability.Int("status", apiErr.StatusCode))

		headers := http.Header{}
		if apiErr.Response != nil {
			headers = apiErr.Response.Header.Clone()
		}

		return domain.CompletionFailure{
			Message: apiErr.Error(),
			Status:  apiErr.StatusCode,
			Headers: headers,
		}
	}

	logger.Warn("OpenAI API call failed", observability.Error(err))

	return transportFailure(err)
}

// toSDKParams converts a domain request to SDK ChatCompletionNewParams.
// Temperature is always sent, including 0.
func (p *Provider) toSDKParams(req *domain.CompletionRequest) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.Question),
		},
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(domain.MaxCompletionTokens),
	}
}
