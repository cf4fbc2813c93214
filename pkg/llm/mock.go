package llm

import "context"

// MockProvider is a configurable fake for testing. Set CompleteFunc to
// control behavior; the zero value returns empty completions.
type MockProvider struct {
	// ProviderName is returned by Name. Defaults to "mock".
	ProviderName string

	// CompleteFunc is called when Complete is invoked. If nil, returns
	// "" and nil error.
	CompleteFunc func(ctx context.Context, req CompletionRequest) (string, error)

	// CompleteCalls counts invocations for verification.
	CompleteCalls int
}

// Name implements Provider.
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Complete implements Provider.
func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.CompleteCalls++
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}
