package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// ChatSession is a live conversation bound to one ModelConfig. It is
// replaced, never reconfigured.
type ChatSession struct {
	Id        string
	Config    ModelConfig
	CreatedAt time.Time
	chat      LLMChat
}

// Send issues one turn on the session's own backend chat.
func (s *ChatSession) Send(ctx context.Context, text string) (*genai.GenerateContentResponse, error) {
	return s.chat.RequestReply(ctx, text)
}

// ChatStarter opens a backend chat for cfg.
type ChatStarter func(ctx context.Context, cfg ModelConfig) (LLMChat, error)

// SessionManager owns at most one live ChatSession. A session captured by a
// caller stays usable after it has been replaced; only later calls see the
// new one. History is not carried over on replacement.
type SessionManager struct {
	mu      sync.Mutex
	start   ChatStarter
	session *ChatSession
}

func NewSessionManager(start ChatStarter) *SessionManager {
	return &SessionManager{start: start}
}

// EnsureSession returns the live session for cfg, creating it when the
// manager is empty or bound to a different config.
func (m *SessionManager) EnsureSession(ctx context.Context, cfg ModelConfig) (*ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil && m.session.Config.Equal(cfg) {
		return m.session, nil
	}
	m.session = nil

	chat, err := m.start(ctx, cfg)
	if err != nil {
		return nil, asOperationError(ModeChat, err)
	}
	m.session = &ChatSession{
		Id:        uuid.NewString(),
		Config:    cfg,
		CreatedAt: time.Now(),
		chat:      chat,
	}
	return m.session, nil
}

func (m *SessionManager) CurrentSession() *ChatSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Invalidate drops the live session without any backend call.
func (m *SessionManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
}
