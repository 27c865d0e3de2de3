package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/answerer/internal/batch"
	"github.com/davidbz/answerer/internal/config"
	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/http"
	"github.com/davidbz/answerer/internal/http/middleware"
	"github.com/davidbz/answerer/internal/observability"
	"github.com/davidbz/answerer/internal/provider/echo"
	"github.com/davidbz/answerer/internal/provider/openai"
	"github.com/davidbz/answerer/internal/provider/registry"
	"github.com/davidbz/answerer/internal/routing"
)

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(func() *config.Config {
		cfg := config.Load()
		if backendFlag != "" {
			cfg.Agent.Backend = backendFlag
		}
		return cfg
	}); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}
	if err := container.Provide(func(cfg *config.AgentConfig) domain.AgentSettings {
		return cfg.Settings()
	}); err != nil {
		log.Fatalf("Failed to provide agent settings: %v", err)
	}

	// Observability
	if err := container.Provide(func() (*zap.Logger, error) {
		return observability.InitLogger(verbose)
	}); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Completion backends
	if err := container.Provide(newCompleterRegistry); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}
	if err := container.Provide(selectCompleter); err != nil {
		log.Fatalf("Failed to provide completer: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(completer domain.Completer, settings domain.AgentSettings) domain.Router {
		return routing.NewClassifier(completer, settings)
	}); err != nil {
		log.Fatalf("Failed to provide classifier: %v", err)
	}
	if err := container.Provide(domain.NewAgent); err != nil {
		log.Fatalf("Failed to provide agent: %v", err)
	}
	if err := container.Provide(func(agent *domain.Agent, events domain.EventPublisher) *batch.Generator {
		return batch.NewGenerator(agent, events)
	}); err != nil {
		log.Fatalf("Failed to provide generator: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// newCompleterRegistry registers every backend; AGENT_BACKEND picks one of them.
func newCompleterRegistry(cfg *openai.Config) (domain.CompleterRegistry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	client, err := openai.NewClient(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP completion client: %w", err)
	}

	provider, err := openai.NewProvider(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI provider: %w", err)
	}

	for _, completer := range []domain.Completer{client, provider, echo.NewProvider()} {
		if err := reg.Register(ctx, completer); err != nil {
			return nil, fmt.Errorf("failed to register %s backend: %w", completer.Name(), err)
		}
	}

	return reg, nil
}

func selectCompleter(reg domain.CompleterRegistry, cfg *config.AgentConfig) (domain.Completer, error) {
	ctx := context.Background()

	completer, err := reg.Get(ctx, cfg.Backend)
	if err != nil {
		names, _ := reg.List(ctx)
		return nil, fmt.Errorf("unknown backend %q (available: %s): %w",
			cfg.Backend, strings.Join(names, ", "), err)
	}

	return completer, nil
}

// withBackend tags ctx with the selected backend for log correlation.
func withBackend(ctx context.Context, completer domain.Completer) context.Context {
	return observability.WithBackend(ctx, completer.Name())
}
