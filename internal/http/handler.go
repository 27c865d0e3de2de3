package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/observability"
)

// Answer modes accepted by /v1/answer.
const (
	ModeFast = "fast"
	ModeFull = "full"
)

// AnswerRequest is the body of POST /v1/answer.
type AnswerRequest struct {
	Input  string  `json:"input"`
	Domain *string `json:"domain,omitempty"`
	Mode   string  `json:"mode,omitempty"`
}

// AnswerResponse is the reply of POST /v1/answer.
type AnswerResponse struct {
	Output string `json:"output"`
}

// Handler handles HTTP requests.
type Handler struct {
	agent *domain.Agent
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(agent *domain.Agent) *Handler {
	return &Handler{
		agent: agent,
	}
}

// HandleAnswer answers one question with the fast pipeline, or the exploratory one when mode is "full".
func (h *Handler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request.
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		http.Error(w, "input is required", http.StatusBadRequest)
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeFast
	}

	logger := observability.FromContext(ctx)
	logger.Info("answer request received",
		observability.String("mode", mode),
		observability.Bool("has_domain", req.Domain != nil),
	)

	var output string
	switch mode {
	case ModeFast:
		output = h.agent.AnswerFast(ctx, req.Input, req.Domain)
	case ModeFull:
		output = h.agent.AnswerFull(ctx, req.Input)
	default:
		http.Error(w, fmt.Sprintf("unknown mode %q", req.Mode), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AnswerResponse{Output: output}); err != nil {
		logger.Error("failed to encode response", observability.Error(err))
		return
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	// Status is already written; an encode failure has nowhere to go.
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}
