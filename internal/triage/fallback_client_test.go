package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackClientPrimarySuccess(t *testing.T) {
	primary := &stubLLMClient{resp: LLMResponse{Text: "primary answer"}}
	secondary := &stubLLMClient{resp: LLMResponse{Text: "secondary answer"}}
	c := NewFallbackLLMClient(primary, secondary, nil)

	resp, err := c.Complete(context.Background(), LLMRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "primary answer", resp.Text)
	assert.Equal(t, 1, primary.calls)
	assert.Zero(t, secondary.calls)
}

func TestFallbackClientPrimaryFailure(t *testing.T) {
	primary := &stubLLMClient{err: errors.New("quota exceeded")}
	secondary := &stubLLMClient{resp: LLMResponse{Text: "secondary answer"}}
	c := NewFallbackLLMClient(primary, secondary, nil)

	resp, err := c.Complete(context.Background(), LLMRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "secondary answer", resp.Text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
	assert.Equal(t, "hi", secondary.lastReq.Prompt)
}

func TestFallbackClientBothFail(t *testing.T) {
	primary := &stubLLMClient{err: errors.New("quota exceeded")}
	secondary := &stubLLMClient{err: errors.New("connection refused")}
	c := NewFallbackLLMClient(primary, secondary, nil)

	_, err := c.Complete(context.Background(), LLMRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, primary.calls, "providers are tried at most once")
	assert.Equal(t, 1, secondary.calls, "providers are tried at most once")
}

func TestFallbackClientNoSecondary(t *testing.T) {
	primary := &stubLLMClient{err: errors.New("quota exceeded")}
	c := NewFallbackLLMClient(primary, nil, nil)

	_, err := c.Complete(context.Background(), LLMRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
