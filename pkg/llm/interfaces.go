// Package llm provides completion providers for hosted language models
// and a fallback chain that walks them in preference order.
package llm

import "context"

// CompletionRequest is a single prompt/completion exchange. The system
// prompt and user prompt are kept separate so each provider can map
// them onto its own API shape.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Provider is a single completion backend.
type Provider interface {
	// Name identifies the provider in logs and results.
	Name() string

	// Complete sends one completion request and returns the text.
	// Errors should be classified via ClassifyError so the chain can
	// decide on retry and fallback.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var (
	_ Provider = (*OpenAIProvider)(nil)
	_ Provider = (*AnthropicProvider)(nil)
	_ Provider = (*MockProvider)(nil)
)
