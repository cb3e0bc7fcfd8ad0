package llm

import (
	"context"
	"fmt"
)

// FakeClient returns canned text that echoes its prompts. It keeps the rest
// of the system fully deterministic and testable without network access.
type FakeClient struct{}

// NewFakeClient creates a fake client.
func NewFakeClient() *FakeClient {
	return &FakeClient{}
}

// Generate echoes the prompts in a fixed format.
func (c *FakeClient) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	if systemPrompt != "" {
		return fmt.Sprintf("[FAKE_LLM]\nSYSTEM: %s\nUSER: %s", systemPrompt, userPrompt), nil
	}
	return fmt.Sprintf("[FAKE_LLM] %s", userPrompt), nil
}

// Close is a no-op.
func (c *FakeClient) Close() error {
	return nil
}
