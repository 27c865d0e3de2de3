package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/answerer/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, "http", cfg.Agent.Backend)
		require.Equal(t, "bens_model", cfg.Agent.Model)
		require.Equal(t, 60, cfg.Agent.Timeout)
		require.Equal(t, "cse476", cfg.OpenAI.APIKey)
		require.Equal(t, "http://10.4.58.53:41701/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 200, cfg.Server.WriteTimeout)
		require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("AGENT_BACKEND", "openai")
		t.Setenv("MODEL_NAME", "gpt-4o-mini")
		t.Setenv("COMPLETION_TIMEOUT", "15")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("API_BASE", "https://test.openai.com/v1")
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, "openai", cfg.Agent.Backend)
		require.Equal(t, "gpt-4o-mini", cfg.Agent.Model)
		require.Equal(t, 15, cfg.Agent.Timeout)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "https://test.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})
}

func TestAgentConfig_Settings(t *testing.T) {
	agent := config.AgentConfig{Model: "m", Timeout: 7}

	settings := agent.Settings()

	require.Equal(t, "m", settings.Model)
	require.Equal(t, 7*time.Second, settings.Timeout)
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Agent.Model = "m"

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Agent, deps.AgentConfig)
	require.Same(t, &cfg.OpenAI, deps.Config)
}
