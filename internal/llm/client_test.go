package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DefaultsToFake(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, "", "")
	require.NoError(t, err)
	assert.IsType(t, &FakeClient{}, client)

	client, err = NewClient(ctx, ProviderFake, "")
	require.NoError(t, err)
	assert.IsType(t, &FakeClient{}, client)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	client, err := NewClient(context.Background(), "openai", "key")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}

func TestNewClient_GeminiRequiresKey(t *testing.T) {
	client, err := NewClient(context.Background(), ProviderGemini, "")
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestFakeClient_Generate(t *testing.T) {
	c := NewFakeClient()

	out, err := c.Generate(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "[FAKE_LLM] hello", out)

	out, err = c.Generate(context.Background(), "be brief", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "SYSTEM: be brief")
	assert.Contains(t, out, "USER: hello")

	assert.NoError(t, c.Close())
}
