package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mandys/cardqa/pkg/retry"
)

// fastPolicy keeps chain tests quick: no waiting between attempts.
func fastPolicy(maxRetries int) ChainPolicy {
	return ChainPolicy{
		Timeout: time.Second,
		RetryConfig: &retry.Config{
			MaxRetries:   maxRetries,
			InitialDelay: time.Millisecond,
			MaxDelay:     time.Millisecond,
			Multiplier:   1.0,
		},
	}
}

func TestChainFirstProviderSucceeds(t *testing.T) {
	primary := &MockProvider{
		ProviderName: "primary",
		CompleteFunc: func(ctx context.Context, req CompletionRequest) (string, error) {
			return "answer", nil
		},
	}
	fallback := &MockProvider{ProviderName: "fallback"}

	chain := NewChain([]Provider{primary, fallback}, fastPolicy(0), zap.NewNop())
	out, provider, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "q"})

	require.NoError(t, err)
	assert.Equal(t, "answer", out)
	assert.Equal(t, "primary", provider)
	assert.Equal(t, 1, primary.CompleteCalls)
	assert.Equal(t, 0, fallback.CompleteCalls)
}

func TestChainFallsBackOnFailure(t *testing.T) {
	primary := &MockProvider{
		ProviderName: "primary",
		CompleteFunc: func(ctx context.Context, req CompletionRequest) (string, error) {
			return "", NewError(ErrorTypeAuth, "authentication failed", false, nil)
		},
	}
	fallback := &MockProvider{
		ProviderName: "fallback",
		CompleteFunc: func(ctx context.Context, req CompletionRequest) (string, error) {
			return "fallback answer", nil
		},
	}

	chain := NewChain([]Provider{primary, fallback}, fastPolicy(1), zap.NewNop())
	out, provider, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "q"})

	require.NoError(t, err)
	assert.Equal(t, "fallback answer", out)
	assert.Equal(t, "fallback", provider)
	// Auth errors are permanent: no retry on the primary before falling back.
	assert.Equal(t, 1, primary.CompleteCalls)
}

func TestChainRetriesTransientErrorBeforeFallback(t *testing.T) {
	attempts := 0
	primary := &MockProvider{
		ProviderName: "primary",
		CompleteFunc: func(ctx context.Context, req CompletionRequest) (string, error) {
			attempts++
			if attempts == 1 {
				return "", NewError(ErrorTypeEndpoint, "request timeout", true, nil)
			}
			return "recovered", nil
		},
	}

	chain := NewChain([]Provider{primary}, fastPolicy(1), zap.NewNop())
	out, provider, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "q"})

	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, "primary", provider)
	assert.Equal(t, 2, primary.CompleteCalls)
}

func TestChainAllProvidersFail(t *testing.T) {
	failing := func(name string) *MockProvider {
		return &MockProvider{
			ProviderName: name,
			CompleteFunc: func(ctx context.Context, req CompletionRequest) (string, error) {
				return "", NewError(ErrorTypeAuth, "authentication failed", false, nil)
			},
		}
	}

	chain := NewChain([]Provider{failing("a"), failing("b")}, fastPolicy(0), zap.NewNop())
	_, _, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "q"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all providers failed")
}

func TestChainNoProviders(t *testing.T) {
	chain := NewChain(nil, fastPolicy(0), zap.NewNop())
	_, _, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "q"})
	assert.Error(t, err)
}

func TestChainProviders(t *testing.T) {
	chain := NewChain([]Provider{
		&MockProvider{ProviderName: "anthropic"},
		&MockProvider{ProviderName: "openai"},
	}, fastPolicy(0), zap.NewNop())

	assert.Equal(t, []string{"anthropic", "openai"}, chain.Providers())
}
