package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/answerer/internal/observability"
)

func TestEventBus_Publish(t *testing.T) {
	t.Run("should log event with sorted fields and run id", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		bus := observability.NewEventBus(zap.New(core))

		ctx := observability.WithRunID(context.Background(), "run-1")
		bus.Publish(ctx, "batch.progress", map[string]interface{}{
			"total": 3,
			"done":  2,
		})

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, "batch.progress", entries[0].Message)

		fields := entries[0].ContextMap()
		require.Equal(t, "batch.progress", fields["event"])
		require.Equal(t, int64(2), fields["done"])
		require.Equal(t, int64(3), fields["total"])
		require.Equal(t, "run-1", fields["run_id"])
	})

	t.Run("should ignore publish without logger", func(t *testing.T) {
		bus := observability.NewEventBus(nil)
		require.NotPanics(t, func() {
			bus.Publish(context.Background(), "noop", nil)
		})
	})
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	require.Empty(t, observability.GetRequestID(ctx))
	require.Empty(t, observability.GetDomainLabel(ctx))

	ctx = observability.WithRequestID(ctx, "req-1")
	ctx = observability.WithDomainLabel(ctx, "math")
	ctx = observability.WithBackend(ctx, "echo")

	require.Equal(t, "req-1", observability.GetRequestID(ctx))
	require.Equal(t, "math", observability.GetDomainLabel(ctx))
	require.Equal(t, "echo", observability.GetBackend(ctx))
	require.Len(t, observability.GenerateTraceID(), 32)
	require.Len(t, observability.GenerateSpanID(), 16)
	require.NotEqual(t, observability.GenerateRunID(), observability.GenerateRunID())
}
