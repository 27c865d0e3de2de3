package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidbz/answerer/internal/http"
	"github.com/davidbz/answerer/internal/observability"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve answers over HTTP",
	Long: `Serve POST /v1/answer and GET /health until interrupted.

Listens on SERVER_PORT (default 8080).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	var server *http.Server
	if err := buildContainer().Invoke(func(s *http.Server) {
		server = s
	}); err != nil {
		return err
	}

	ctx := cmd.Context()
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	observability.FromContext(ctx).Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
