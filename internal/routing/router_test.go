package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/routing"
)

// stubCompleter returns a fixed result and records requests.
type stubCompleter struct {
	result   domain.CompletionResult
	requests []*domain.CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req *domain.CompletionRequest) domain.CompletionResult {
	s.requests = append(s.requests, req)
	return s.result
}

func (s *stubCompleter) Name() string {
	return "stub"
}

func TestClassifier_Route(t *testing.T) {
	settings := domain.AgentSettings{Model: "test-model"}

	tests := []struct {
		name     string
		result   domain.CompletionResult
		expected domain.Label
	}{
		{
			name:     "should return exact label",
			result:   domain.CompletionSuccess{Text: "planning", Status: 200},
			expected: domain.LabelPlanning,
		},
		{
			name:     "should match label case-insensitively with noise",
			result:   domain.CompletionSuccess{Text: "  Label: FUTURE_PREDICTION.\n", Status: 200},
			expected: domain.LabelFuturePrediction,
		},
		{
			name:     "should fall back when reply names no label",
			result:   domain.CompletionSuccess{Text: "banana", Status: 200},
			expected: domain.LabelCommonSense,
		},
		{
			name:     "should fall back on failed call",
			result:   domain.CompletionFailure{Message: "dial tcp: refused", Status: domain.StatusTransportFailure},
			expected: domain.LabelCommonSense,
		},
		{
			name:     "should prefer earlier label when several appear",
			result:   domain.CompletionSuccess{Text: "coding or math", Status: 200},
			expected: domain.LabelMath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &stubCompleter{result: tt.result}
			classifier := routing.NewClassifier(completer, settings)

			label := classifier.Route(context.Background(), "What is 2+2?")

			require.Equal(t, tt.expected, label)
		})
	}
}

func TestClassifier_Request(t *testing.T) {
	completer := &stubCompleter{result: domain.CompletionSuccess{Text: "math"}}
	classifier := routing.NewClassifier(completer, domain.AgentSettings{Model: "test-model"})

	classifier.Route(context.Background(), "What is 2+2?")

	require.Len(t, completer.requests, 1)
	req := completer.requests[0]
	require.Equal(t, "Question:\nWhat is 2+2?\n\nDomain label:", req.Question)
	require.Equal(t, "test-model", req.Model)
	require.InDelta(t, 0.0, req.Temperature, 0)
	require.Equal(t, routing.SystemPrompt(), req.SystemPrompt)
}

func TestSystemPrompt_ListsEveryLabel(t *testing.T) {
	prompt := routing.SystemPrompt()

	for _, label := range domain.Labels() {
		require.Contains(t, prompt, "  - "+label.String()+": ")
	}
	require.Contains(t, prompt, "Reply with ONLY the label word")
}
