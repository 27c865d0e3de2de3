package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/observability"
)

const clientName = "http"

// Client is the raw net/http completion backend.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Compile-time check that Client satisfies the Completer interface.
var _ domain.Completer = (*Client)(nil)

// NewClient creates a new chat completions HTTP client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errors.New("API base URL is required")
	}

	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		// Deadlines come from the per-request context.
		httpClient: &http.Client{},
	}, nil
}

// Chat completions request/response structures.
type chatRequest struct {
	Model       string           `json:"model"`
	Messages    []domain.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Name returns the backend identifier.
func (c *Client) Name() string {
	return clientName
}

// Complete sends one non-streaming completion request. Failures never escape as
// errors: they come back as domain.CompletionFailure.
func (c *Client) Complete(ctx context.Context, req *domain.CompletionRequest) domain.CompletionResult {
	if req == nil {
		return domain.CompletionFailure{Message: "request cannot be nil", Status: domain.StatusTransportFailure}
	}

	logger := observability.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, req.EffectiveTimeout())
	defer cancel()

	reqBody, err := json.Marshal(chatRequest{
		Model:       req.Model,
		Messages:    req.Messages(),
		Temperature: req.Temperature,
		MaxTokens:   domain.MaxCompletionTokens,
	})
	if err != nil {
		return transportFailure(fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return transportFailure(fmt.Errorf("failed to create request: %w", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	logger.Debug("calling chat completions API", observability.String("model", req.Model))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn("chat completions request failed", observability.Error(err))
		return transportFailure(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("failed to read chat completions response", observability.Error(err))
		return domain.CompletionFailure{
			Message: fmt.Sprintf("failed to read response: %v", err),
			Status:  resp.StatusCode,
			Headers: resp.Header.Clone(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("chat completions API returned error status",
			observability.Int("status", resp.StatusCode))
		return domain.CompletionFailure{
			Message: errorMessage(body),
			Status:  resp.StatusCode,
			Headers: resp.Header.Clone(),
		}
	}

	var parsed chatResponse
	if decodeErr := json.Unmarshal(body, &parsed); decodeErr != nil {
		logger.Warn("failed to decode chat completions response", observability.Error(decodeErr))
		return domain.CompletionFailure{
			Message: fmt.Sprintf("failed to decode response: %v", decodeErr),
			Status:  resp.StatusCode,
			Headers: resp.Header.Clone(),
		}
	}

	text := ""
	if len(parsed.Choices) > 0 {
		text = parsed.Choices[0].Message.Content
	}

	return domain.CompletionSuccess{
		Text:   text,
		Raw:    body,
		Status: resp.StatusCode,
	}
}

// errorMessage renders an error body: compact JSON when it parses, raw text otherwise.
func errorMessage(body []byte) string {
	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err == nil {
		return compact.String()
	}
	return string(body)
}

func transportFailure(err error) domain.CompletionFailure {
	return domain.CompletionFailure{
		Message: err.Error(),
		Status:  domain.StatusTransportFailure,
		Headers: http.Header{},
	}
}
