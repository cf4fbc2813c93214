package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mandys/cardqa/pkg/apperrors"
	"github.com/mandys/cardqa/pkg/retry"
)

// ChainPolicy controls how the fallback chain walks its providers:
// per-provider timeout and retry budget for transient failures.
type ChainPolicy struct {
	Timeout     time.Duration
	RetryConfig *retry.Config
}

// DefaultChainPolicy allows one retry on transient errors and bounds
// each provider attempt to 30 seconds.
func DefaultChainPolicy() ChainPolicy {
	return ChainPolicy{
		Timeout: 30 * time.Second,
		RetryConfig: &retry.Config{
			MaxRetries:   1,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2.0,
			JitterFactor: 0.1,
		},
	}
}

// Chain tries an ordered list of providers until one succeeds. The
// order is the provider-preference policy: earlier entries are
// preferred, later entries are fallbacks.
type Chain struct {
	providers []Provider
	policy    ChainPolicy
	logger    *zap.Logger
}

// NewChain creates a fallback chain over the given providers.
func NewChain(providers []Provider, policy ChainPolicy, logger *zap.Logger) *Chain {
	return &Chain{
		providers: providers,
		policy:    policy,
		logger:    logger.Named("llm"),
	}
}

// Providers returns the configured provider names in preference order.
func (c *Chain) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Complete walks the provider chain. Transient errors are retried per
// policy within a provider before moving to the next one. Returns the
// completion and the name of the provider that produced it.
func (c *Chain) Complete(ctx context.Context, req CompletionRequest) (string, string, error) {
	if len(c.providers) == 0 {
		return "", "", apperrors.ErrNoProviders
	}

	var lastErr error
	for _, p := range c.providers {
		var out string
		err := retry.DoIfRetryable(ctx, c.policy.RetryConfig, func() error {
			attemptCtx := ctx
			if c.policy.Timeout > 0 {
				var cancel context.CancelFunc
				attemptCtx, cancel = context.WithTimeout(ctx, c.policy.Timeout)
				defer cancel()
			}
			var completeErr error
			out, completeErr = p.Complete(attemptCtx, req)
			return completeErr
		})
		if err == nil {
			return out, p.Name(), nil
		}

		lastErr = err
		c.logger.Warn("provider failed, trying next",
			zap.String("provider", p.Name()),
			zap.String("error_type", string(GetErrorType(err))),
			zap.Error(err))

		if ctx.Err() != nil {
			break
		}
	}

	return "", "", fmt.Errorf("all providers failed: %w", lastErr)
}
