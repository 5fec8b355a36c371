package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type starterSpy struct {
	mu      sync.Mutex
	configs []ModelConfig
	chats   []*fakeChat
	err     error
}

func (s *starterSpy) start(ctx context.Context, cfg ModelConfig) (LLMChat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs = append(s.configs, cfg)
	if s.err != nil {
		return nil, s.err
	}
	chat := &fakeChat{}
	s.chats = append(s.chats, chat)
	return chat, nil
}

func TestEnsureSessionIsIdempotent(t *testing.T) {
	spy := &starterSpy{}
	m := NewSessionManager(spy.start)
	r := NewRouter(ModelTable{})

	first, err := m.EnsureSession(context.Background(), r.Route(ModeChat, false))
	require.NoError(t, err)
	second, err := m.EnsureSession(context.Background(), r.Route(ModeChat, false))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, first.Id, second.Id)
	assert.Len(t, spy.configs, 1)
}

func TestToggleReplacesSession(t *testing.T) {
	spy := &starterSpy{}
	m := NewSessionManager(spy.start)
	r := NewRouter(ModelTable{})

	before, err := m.EnsureSession(context.Background(), r.Route(ModeChat, false))
	require.NoError(t, err)
	after, err := m.EnsureSession(context.Background(), r.Route(ModeChat, true))
	require.NoError(t, err)

	assert.NotEqual(t, before.Id, after.Id)
	assert.True(t, after.Config.HasTool(CapabilityWebSearch))
	assert.Same(t, after, m.CurrentSession())
	require.Len(t, spy.chats, 2)
	assert.NotSame(t, spy.chats[0], spy.chats[1])
}

func TestInvalidate(t *testing.T) {
	spy := &starterSpy{}
	m := NewSessionManager(spy.start)
	cfg := NewRouter(ModelTable{}).Route(ModeChat, false)

	assert.Nil(t, m.CurrentSession())
	first, err := m.EnsureSession(context.Background(), cfg)
	require.NoError(t, err)

	m.Invalidate()
	assert.Nil(t, m.CurrentSession())
	assert.Len(t, spy.configs, 1)

	second, err := m.EnsureSession(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, second.Id)
}

func TestEnsureSessionFailureLeavesAbsent(t *testing.T) {
	spy := &starterSpy{}
	m := NewSessionManager(spy.start)
	r := NewRouter(ModelTable{})

	_, err := m.EnsureSession(context.Background(), r.Route(ModeChat, false))
	require.NoError(t, err)

	spy.err = errors.New("dial tcp: connection refused")
	_, err = m.EnsureSession(context.Background(), r.Route(ModeChat, true))
	assert.ErrorIs(t, err, ErrNetworkOrBackendFailure)
	assert.Nil(t, m.CurrentSession())

	spy.err = MissingCredential(errors.New("no key"))
	_, err = m.EnsureSession(context.Background(), r.Route(ModeChat, true))
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestInFlightTurnKeepsItsSession(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	old := &fakeChat{reply: func(text string) (*genai.GenerateContentResponse, error) {
		close(entered)
		<-release
		return textResponse("from old session"), nil
	}}
	chats := []LLMChat{old, &fakeChat{}}
	m := NewSessionManager(func(ctx context.Context, cfg ModelConfig) (LLMChat, error) {
		next := chats[0]
		chats = chats[1:]
		return next, nil
	})
	r := NewRouter(ModelTable{})

	session, err := m.EnsureSession(context.Background(), r.Route(ModeChat, false))
	require.NoError(t, err)

	done := make(chan string)
	go func() {
		resp, err := session.Send(context.Background(), "Explain photosynthesis")
		if err != nil {
			done <- err.Error()
			return
		}
		done <- resp.Candidates[0].Content.Parts[0].Text
	}()

	<-entered
	replacement, err := m.EnsureSession(context.Background(), r.Route(ModeChat, true))
	require.NoError(t, err)
	close(release)

	assert.Equal(t, "from old session", <-done)
	assert.NotEqual(t, session.Id, replacement.Id)
	assert.Same(t, replacement, m.CurrentSession())
}
