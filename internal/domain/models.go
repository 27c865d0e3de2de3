package domain

import (
	"net/http"
	"time"
)

const (
	// MaxCompletionTokens caps every completion request.
	MaxCompletionTokens = 256

	// DefaultTimeout bounds a completion call when the request leaves Timeout unset.
	DefaultTimeout = 60 * time.Second

	// StatusTransportFailure marks failures that never produced an HTTP response.
	StatusTransportFailure = -1
)

// CompletionRequest is one single-turn chat completion.
type CompletionRequest struct {
	Question     string        `json:"question"`
	SystemPrompt string        `json:"system_prompt"`
	Model        string        `json:"model"`
	Temperature  float64       `json:"temperature"`
	Timeout      time.Duration `json:"timeout"`
}

// EffectiveTimeout returns Timeout, or DefaultTimeout when unset.
func (r *CompletionRequest) EffectiveTimeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // system, user
	Content string `json:"content"`
}

// Messages returns the system and user messages for the request.
func (r *CompletionRequest) Messages() []Message {
	return []Message{
		{Role: "system", Content: r.SystemPrompt},
		{Role: "user", Content: r.Question},
	}
}

// CompletionResult is either a CompletionSuccess or a CompletionFailure.
type CompletionResult interface {
	// Content returns the completion text; failures return "".
	Content() string

	// OK reports whether the call succeeded.
	OK() bool

	completionResult()
}

// CompletionSuccess is a 200 response with its first choice's content.
type CompletionSuccess struct {
	Text   string
	Raw    []byte
	Status int
}

// Content implements CompletionResult.
func (s CompletionSuccess) Content() string { return s.Text }

// OK implements CompletionResult.
func (s CompletionSuccess) OK() bool { return true }

func (CompletionSuccess) completionResult() {}

// CompletionFailure is a non-200 response or a transport error.
type CompletionFailure struct {
	Message string
	Status  int
	Headers http.Header
}

// Content implements CompletionResult.
func (f CompletionFailure) Content() string { return "" }

// OK implements CompletionResult.
func (f CompletionFailure) OK() bool { return false }

func (CompletionFailure) completionResult() {}

// Transport reports whether the failure happened before any HTTP response.
func (f CompletionFailure) Transport() bool {
	return f.Status == StatusTransportFailure
}
