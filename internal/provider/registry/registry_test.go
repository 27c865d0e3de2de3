package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/provider/registry"
)

// namedCompleter is a minimal Completer for registry tests.
type namedCompleter struct {
	name string
}

func (n *namedCompleter) Complete(_ context.Context, _ *domain.CompletionRequest) domain.CompletionResult {
	return domain.CompletionSuccess{Text: n.name, Status: 200}
}

func (n *namedCompleter) Name() string {
	return n.name
}

func TestRegistry_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should register and get completer", func(t *testing.T) {
		reg := registry.NewRegistry()

		require.NoError(t, reg.Register(ctx, &namedCompleter{name: "http"}))

		completer, err := reg.Get(ctx, "http")
		require.NoError(t, err)
		require.Equal(t, "http", completer.Name())
	})

	t.Run("should reject nil completer", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(ctx, nil)

		require.Error(t, err)
		require.Contains(t, err.Error(), "completer cannot be nil")
	})

	t.Run("should reject empty name", func(t *testing.T) {
		reg := registry.NewRegistry()

		err := reg.Register(ctx, &namedCompleter{})

		require.Error(t, err)
		require.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("should reject duplicates", func(t *testing.T) {
		reg := registry.NewRegistry()
		require.NoError(t, reg.Register(ctx, &namedCompleter{name: "echo"}))

		err := reg.Register(ctx, &namedCompleter{name: "echo"})

		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})
}

func TestRegistry_Get(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	_, err := reg.Get(ctx, "")
	require.Error(t, err)

	_, err = reg.Get(ctx, "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "completer missing not found")
}

func TestRegistry_List(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	names, err := reg.List(ctx)
	require.NoError(t, err)
	require.Empty(t, names)

	for _, name := range []string{"openai", "echo", "http"} {
		require.NoError(t, reg.Register(ctx, &namedCompleter{name: name}))
	}

	names, err = reg.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"echo", "http", "openai"}, names)
}
