package gemini

import (
	"context"
	"net/http"
	"sync"

	"google.golang.org/genai"

	"saes/study-app/core"
)

type Options struct {
	// BaseURL overrides the Gemini API endpoint; empty keeps the SDK default.
	BaseURL    string
	HTTPClient *http.Client
}

type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string, opts Options) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  opts.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Generate(ctx context.Context, cfg core.ModelConfig, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	config, err := GenerateConfig(cfg)
	if err != nil {
		return nil, err
	}
	return g.client.Models.GenerateContent(ctx, cfg.ModelID, contents, config)
}

func (g *Gemini) StartChat(ctx context.Context, cfg core.ModelConfig) (core.LLMChat, error) {
	config, err := GenerateConfig(cfg)
	if err != nil {
		return nil, err
	}
	session, err := g.client.Chats.Create(ctx, cfg.ModelID, config, nil)
	if err != nil {
		return nil, err
	}
	return &GeminiChat{session: session}, nil
}

// GeminiChat keeps its history inside the SDK chat, so replies are serialized.
type GeminiChat struct {
	mu      sync.Mutex
	session *genai.Chat
}

func (c *GeminiChat) RequestReply(ctx context.Context, text string) (*genai.GenerateContentResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.SendMessage(ctx, genai.Part{Text: text})
}

// NewConnector returns a core.Connector that reuses one client per credential.
func NewConnector(opts Options) core.Connector {
	var (
		mu      sync.Mutex
		clients = make(map[core.Credential]*Gemini)
	)
	return func(ctx context.Context, credential core.Credential) (core.LLM, error) {
		mu.Lock()
		defer mu.Unlock()
		if g, ok := clients[credential]; ok {
			return g, nil
		}
		g, err := NewGemini(ctx, string(credential), opts)
		if err != nil {
			return nil, err
		}
		clients[credential] = g
		return g, nil
	}
}
