package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS      float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int      `mapstructure:"RATE_LIMIT_BURST"`
	SessionTTLMinutes int      `mapstructure:"SESSION_TTL_MINUTES"`
	DefaultLanguage   string   `mapstructure:"DEFAULT_LANGUAGE"`
	AIBaseURL         string   `mapstructure:"AI_BASE_URL"`
	AIAPIKey          string   `mapstructure:"AI_API_KEY"`
	AIModel           string   `mapstructure:"AI_MODEL"`
	AIMaxTokens       int      `mapstructure:"AI_MAX_TOKENS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("SESSION_TTL_MINUTES", 60)
	v.SetDefault("DEFAULT_LANGUAGE", "en")
	v.SetDefault("AI_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_MAX_TOKENS", 500)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("SESSION_TTL_MINUTES")
	v.BindEnv("DEFAULT_LANGUAGE")
	v.BindEnv("AI_BASE_URL")
	v.BindEnv("AI_API_KEY")
	v.BindEnv("AI_MODEL")
	v.BindEnv("AI_MAX_TOKENS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ChatEnabled reports whether the assistant endpoint has a backend to call.
func (c *Config) ChatEnabled() bool {
	return c.AIBaseURL != ""
}

// Validate checks that the configuration is safe to run. The chat backend is
// optional, but when AI_BASE_URL is set a key must accompany it so that
// requests do not fail at the upstream.
func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "production" && c.Env != "test" {
		return fmt.Errorf("ENV must be \"development\", \"production\", or \"test\", got %q", c.Env)
	}
	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must not be negative, got %d", c.SessionTTLMinutes)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}
	if c.ChatEnabled() && c.AIAPIKey == "" {
		return fmt.Errorf("AI_API_KEY is required when AI_BASE_URL is set")
	}
	switch c.DefaultLanguage {
	case "en", "hi":
	default:
		return fmt.Errorf("DEFAULT_LANGUAGE must be a supported language code, got %q", c.DefaultLanguage)
	}
	return nil
}
