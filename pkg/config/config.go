package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for cardqa.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// DataDir is the directory holding the per-bank card terms documents.
	DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"data"`

	// Provider configuration. Keys are secrets and come only from env.
	OpenAI    ProviderConfig `yaml:"openai"`
	Anthropic ProviderConfig `yaml:"anthropic"`

	// LLM holds chain-wide completion settings.
	LLM LLMConfig `yaml:"llm"`
}

// ProviderConfig holds one completion provider's settings.
type ProviderConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model"`
}

// LLMConfig holds completion chain settings shared by all providers.
type LLMConfig struct {
	// TimeoutSeconds bounds a single completion attempt.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"LLM_TIMEOUT_SECONDS" env-default:"30"`
	// MaxRetries is the number of retries per provider on retryable errors.
	MaxRetries int `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"1"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. If config.yaml does not exist, configuration comes from
// environment variables and defaults alone. The version parameter is
// injected at build time and set on the returned Config. API keys are
// env-only (yaml:"-" fields).
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	// cleanenv does not apply env tags to nested yaml:"-" fields, so the
	// secrets are read explicitly.
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = envOr("OPENAI_MODEL", "gpt-4o-mini")
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = envOr("ANTHROPIC_MODEL", "claude-3-5-haiku-latest")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return fmt.Errorf("llm timeout_seconds must be positive, got %d", c.LLM.TimeoutSeconds)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm max_retries must not be negative, got %d", c.LLM.MaxRetries)
	}
	return nil
}

// HasOpenAI reports whether the OpenAI provider is configured.
func (c *Config) HasOpenAI() bool {
	return c.OpenAI.APIKey != ""
}

// HasAnthropic reports whether the Anthropic provider is configured.
func (c *Config) HasAnthropic() bool {
	return c.Anthropic.APIKey != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
