package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/answerer/internal/domain"
	"github.com/davidbz/answerer/internal/provider/openai"
)

// Backend names accepted by AGENT_BACKEND.
const (
	BackendHTTP   = "http"
	BackendOpenAI = "openai"
	BackendEcho   = "echo"
)

// Config represents the agent configuration.
type Config struct {
	Agent  AgentConfig
	Server ServerConfig
	CORS   CORSConfig
	OpenAI openai.Config
}

// AgentConfig selects the completion backend and the model parameters of every call.
type AgentConfig struct {
	Backend string `env:"AGENT_BACKEND"      envDefault:"http"`
	Model   string `env:"MODEL_NAME"         envDefault:"bens_model"`
	Timeout int    `env:"COMPLETION_TIMEOUT" envDefault:"60"`
}

// Settings converts the config into the agent's call parameters.
func (a *AgentConfig) Settings() domain.AgentSettings {
	return domain.AgentSettings{
		Model:   a.Model,
		Timeout: time.Duration(a.Timeout) * time.Second,
	}
}

// ServerConfig contains HTTP server settings.
// WriteTimeout covers the three sequential calls of the exploratory pipeline.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"200"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*AgentConfig
	*ServerConfig
	*CORSConfig
	*openai.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Agent,
		&cfg.Server,
		&cfg.CORS,
		&cfg.OpenAI,
	}
}
