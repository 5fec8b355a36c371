package core

import (
	"context"

	"google.golang.org/genai"
)

// Credential is the API key used to reach the generative backend.
type Credential string

type Stats struct {
	InputTokenCount  int32 `json:"input_token_count,omitempty"`
	OutputTokenCount int32 `json:"output_token_count,omitempty"`
	TotalTokenCount  int32 `json:"total_token_count,omitempty"`
}

// LLM is a stateless view of the backend bound to one credential.
type LLM interface {
	Generate(ctx context.Context, cfg ModelConfig, contents []*genai.Content) (*genai.GenerateContentResponse, error)
	StartChat(ctx context.Context, cfg ModelConfig) (LLMChat, error)
}

// LLMChat is a conversation kept on the backend. Implementations must
// serialize concurrent replies on the same chat.
type LLMChat interface {
	RequestReply(ctx context.Context, text string) (*genai.GenerateContentResponse, error)
}

// Connector builds an LLM for the given credential.
type Connector func(ctx context.Context, credential Credential) (LLM, error)
