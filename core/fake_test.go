package core

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

type fakeChat struct {
	mu    sync.Mutex
	texts []string
	reply func(text string) (*genai.GenerateContentResponse, error)
}

func (f *fakeChat) RequestReply(ctx context.Context, text string) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	f.texts = append(f.texts, text)
	f.mu.Unlock()
	if f.reply != nil {
		return f.reply(text)
	}
	return textResponse("ok"), nil
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, &genai.Part{Text: text})
	}
	return responseOf(parts...)
}

func responseOf(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: parts}}},
	}
}

func imagePart(data []byte) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: data}}
}
