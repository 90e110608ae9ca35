// Package oracle provides clients for the external intent-extraction model.
package oracle

import (
	"context"
)

// Response is the outcome of an extraction call. Content carries the raw
// model output, expected to be a JSON structured-intent payload; parsing and
// validation happen downstream.
type Response struct {
	Content   string
	Model     string
	TokensIn  int
	TokensOut int
	LatencyMs int64
}

// Client is the interface for extraction-oracle providers.
type Client interface {
	// Extract sends the system context and user message to the model and
	// returns its raw output.
	Extract(ctx context.Context, systemPrompt, userMessage string) (*Response, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of oracle provider.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// NewClient creates an oracle client for the given provider. Model may be
// empty to use the provider default.
func NewClient(provider Provider, apiKey, model string) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, model)
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey, model)
	default:
		return NewAnthropicClient(apiKey, model)
	}
}
