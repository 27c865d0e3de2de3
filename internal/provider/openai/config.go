package openai

// Config contains completion endpoint configuration.
// Both backends in this package read it:
//   - APIKey: sent as "Authorization: Bearer <key>" (option.WithAPIKey for the SDK)
//   - BaseURL: requests go to BaseURL + "/chat/completions" (option.WithBaseURL for the SDK)
type Config struct {
	APIKey  string `env:"OPENAI_API_KEY" envDefault:"cse476"`
	BaseURL string `env:"API_BASE"       envDefault:"http://10.4.58.53:41701/v1"`
}
