// Package llm provides the LLM client abstraction used by the interview CLI
// for conversational filler. The core screening and scoring pipeline never
// depends on it; the default provider is a fake returning canned text.
package llm

import (
	"context"
	"fmt"
)

// Provider selects an LLM implementation.
type Provider string

// Supported providers.
const (
	ProviderFake   Provider = "fake"
	ProviderGemini Provider = "gemini"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// Generate produces text for a prompt, optionally steered by a system
	// prompt (may be empty).
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the given provider. The API key is only
// required for real providers.
func NewClient(ctx context.Context, provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderFake, "":
		return NewFakeClient(), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
