package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported completion providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Completion provider
	LLM LLMConfig

	// Advice endpoint rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

// LLMConfig holds the completion provider configuration
type LLMConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string // Optional: any OpenAI-compatible endpoint
	Model       string
	Timeout     time.Duration
	SecretsFile string
}

// secrets mirrors the secrets file layout:
//
//	openai:
//	  OPENAI_API_KEY: sk-...
//	gemini:
//	  GEMINI_API_KEY: ...
type secrets map[string]map[string]string

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:8080"), ","),
		Env:         getEnv("ENV", "development"),
		LLM: LLMConfig{
			Provider:    strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			SecretsFile: getEnv("SECRETS_FILE", ".secrets.yaml"),
		},
	}

	var err error
	if cfg.LLM.Timeout, err = time.ParseDuration(getEnv("LLM_TIMEOUT", "60s")); err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}
	if cfg.RateLimitPerMinute, err = strconv.Atoi(getEnv("ADVICE_RATE_LIMIT", "10")); err != nil {
		return nil, fmt.Errorf("invalid ADVICE_RATE_LIMIT: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("ADVICE_RATE_BURST", "3")); err != nil {
		return nil, fmt.Errorf("invalid ADVICE_RATE_BURST: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	switch cfg.LLM.Provider {
	case ProviderGemini:
		cfg.LLM.Model = getEnv("GEMINI_MODEL", "gemini-2.0-flash")
	default:
		cfg.LLM.Model = getEnv("OPENAI_MODEL", "gpt-3.5-turbo")
	}

	cfg.LLM.APIKey, err = ResolveAPIKey(cfg.LLM.SecretsFile, cfg.LLM.Provider)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.LLM.Provider != ProviderOpenAI && c.LLM.Provider != ProviderGemini {
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("ADVICE_RATE_LIMIT and ADVICE_RATE_BURST must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ResolveAPIKey looks up the provider's API key in the secrets file first and
// falls back to the environment. A missing key is not an error here.
func ResolveAPIKey(secretsFile, provider string) (string, error) {
	envKey := strings.ToUpper(provider) + "_API_KEY"

	if secretsFile != "" {
		data, err := os.ReadFile(secretsFile)
		switch {
		case err == nil:
			var s secrets
			if err := yaml.Unmarshal(data, &s); err != nil {
				return "", fmt.Errorf("failed to parse secrets file %s: %w", secretsFile, err)
			}
			if key := s[provider][envKey]; key != "" {
				return key, nil
			}
		case errors.Is(err, os.ErrNotExist):
			// fall through to the environment
		default:
			return "", fmt.Errorf("failed to read secrets file %s: %w", secretsFile, err)
		}
	}

	return os.Getenv(envKey), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
