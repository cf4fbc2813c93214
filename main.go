package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mandys/cardqa/pkg/cards"
	"github.com/mandys/cardqa/pkg/config"
	"github.com/mandys/cardqa/pkg/handlers"
	"github.com/mandys/cardqa/pkg/llm"
	"github.com/mandys/cardqa/pkg/middleware"
	"github.com/mandys/cardqa/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// .env is a local-development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("openai", cfg.HasOpenAI()),
		zap.Bool("anthropic", cfg.HasAnthropic()))

	registry, err := cards.Load(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("failed to load card data", zap.String("dir", cfg.DataDir), zap.Error(err))
	}
	logger.Info("card data loaded",
		zap.Int("cards", registry.Len()),
		zap.Strings("names", registry.CardNames()))

	chain := buildChain(cfg, logger)

	queryService := services.NewQueryService(registry, chain, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, registry.Len(), logger).RegisterRoutes(mux)
	handlers.NewCardsHandler(registry, logger).RegisterRoutes(mux)
	handlers.NewChatHandler(queryService, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("starting cardqa",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.Strings("providers", chain.Providers()))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// buildLogger picks the zap preset by environment: human-readable in
// local development, JSON elsewhere.
func buildLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildChain assembles the provider fallback chain from whichever API
// keys are present, OpenAI preferred. An empty chain still serves
// deterministic calculations; prose answers degrade gracefully.
func buildChain(cfg *config.Config, logger *zap.Logger) *llm.Chain {
	var providers []llm.Provider

	if cfg.HasOpenAI() {
		p, err := llm.NewOpenAIProvider(&llm.OpenAIConfig{
			Model:  cfg.OpenAI.Model,
			APIKey: cfg.OpenAI.APIKey,
		}, logger)
		if err != nil {
			logger.Warn("openai provider not configured", zap.Error(err))
		} else {
			providers = append(providers, p)
		}
	}

	if cfg.HasAnthropic() {
		p, err := llm.NewAnthropicProvider(&llm.AnthropicConfig{
			Model:  cfg.Anthropic.Model,
			APIKey: cfg.Anthropic.APIKey,
		}, logger)
		if err != nil {
			logger.Warn("anthropic provider not configured", zap.Error(err))
		} else {
			providers = append(providers, p)
		}
	}

	if len(providers) == 0 {
		logger.Warn("no completion providers configured; only deterministic answers available")
	}

	policy := llm.DefaultChainPolicy()
	policy.Timeout = time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	policy.RetryConfig.MaxRetries = cfg.LLM.MaxRetries

	return llm.NewChain(providers, policy, logger)
}
