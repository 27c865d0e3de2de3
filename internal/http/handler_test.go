package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/answerer/internal/config"
	"github.com/davidbz/answerer/internal/domain"
	apihttp "github.com/davidbz/answerer/internal/http"
	"github.com/davidbz/answerer/internal/http/middleware"
)

// replyCompleter answers every call with the same text and counts calls.
type replyCompleter struct {
	text  string
	calls int
}

func (r *replyCompleter) Complete(_ context.Context, _ *domain.CompletionRequest) domain.CompletionResult {
	r.calls++
	return domain.CompletionSuccess{Text: r.text, Status: http.StatusOK}
}

func (r *replyCompleter) Name() string {
	return "reply"
}

type mathRouter struct{}

func (mathRouter) Route(_ context.Context, _ string) domain.Label {
	return domain.LabelMath
}

func newServer(completer domain.Completer) http.Handler {
	agent := domain.NewAgent(completer, mathRouter{}, domain.AgentSettings{Model: "test-model"})
	handler := apihttp.NewHandler(agent)
	server := apihttp.NewServer(&config.ServerConfig{Port: 0}, handler, middleware.Chain(middleware.Trace()))
	return server.Routes()
}

func postAnswer(t *testing.T, routes http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/answer", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	routes.ServeHTTP(w, req)
	return w
}

func TestHandleAnswer(t *testing.T) {
	t.Run("should answer with fast pipeline", func(t *testing.T) {
		completer := &replyCompleter{text: "x equals 5"}
		routes := newServer(completer)

		w := postAnswer(t, routes, `{"input": "Solve for x: 3x+5=20", "domain": "math"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.NotEmpty(t, w.Header().Get("X-Request-Id"))

		var resp apihttp.AnswerResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Equal(t, "5", resp.Output)
		require.Equal(t, 1, completer.calls)
	})

	t.Run("should run exploratory pipeline in full mode", func(t *testing.T) {
		completer := &replyCompleter{text: "FINAL_ANSWER: 5"}
		routes := newServer(completer)

		w := postAnswer(t, routes, `{"input": "Solve 3x+5=20", "mode": "full"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp apihttp.AnswerResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Equal(t, "FINAL_ANSWER: 5", resp.Output)
		require.Equal(t, 2, completer.calls)
	})

	t.Run("should reject bad requests", func(t *testing.T) {
		routes := newServer(&replyCompleter{})

		require.Equal(t, http.StatusBadRequest, postAnswer(t, routes, `not json`).Code)
		require.Equal(t, http.StatusBadRequest, postAnswer(t, routes, `{"input": "   "}`).Code)
		require.Equal(t, http.StatusBadRequest, postAnswer(t, routes, `{"input": "q", "mode": "slow"}`).Code)
	})

	t.Run("should reject non-POST", func(t *testing.T) {
		routes := newServer(&replyCompleter{})

		w := httptest.NewRecorder()
		routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/answer", nil))

		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	routes := newServer(&replyCompleter{})

	w := httptest.NewRecorder()
	routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
