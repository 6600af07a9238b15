package daily

import "time"

const (
	// DefaultBaseURL is Daily's public REST endpoint.
	DefaultBaseURL = "https://api.daily.co/v1/"
	DefaultTimeout = 30 * time.Second
	defaultAgent   = "dailyco-go"
)

// Config holds configuration for the Daily REST client.
type Config struct {
	// Daily API key for REST API authentication.
	APIKey string `json:"api_key,omitempty" toml:"api_key" env:"DAILY_API_KEY"`

	// Daily API base URL (default: https://api.daily.co/v1/).
	APIBaseURL string `json:"api_base_url,omitempty" toml:"base_url" env:"DAILY_API_BASE_URL"`

	// Per-request timeout. Zero disables the client-side limit; callers can
	// still bound a call through its context.
	Timeout time.Duration `json:"timeout,omitempty" toml:"timeout" env:"DAILY_TIMEOUT"`

	UserAgent string `json:"user_agent,omitempty" toml:"user_agent" env:"DAILY_USER_AGENT"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: DefaultBaseURL,
		Timeout:    DefaultTimeout,
		UserAgent:  defaultAgent,
	}
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.APIBaseURL == "" {
		c.APIBaseURL = def.APIBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	return c
}
