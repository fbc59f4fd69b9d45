package triage

import "context"

// LLMRequest is a single-turn generation request against a generative-text
// provider.
type LLMRequest struct {
	Prompt      string
	Temperature float32
	TopP        float32
	TopK        int32
	MaxTokens   int32
}

// LLMResponse carries the first usable text candidate. Text may be empty
// when the provider returned a well-formed response with no usable text;
// that case is not an error.
type LLMResponse struct {
	Text       string
	StopReason string
}

// LLMClient abstracts the external generative-text service.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (LLMResponse, error)
}
