package study_service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"saes/study-app/core"
	"saes/study-app/gemini"
)

type Options struct {
	Router    core.Router
	Resolver  core.CredentialResolver
	Connector core.Connector
	Logger    *zap.Logger
	// SessionTTL is how long an idle surface keeps its chat session.
	SessionTTL time.Duration
	// Timeout bounds each backend call; zero means no limit.
	Timeout time.Duration
}

// Service is the entry point for the four interaction modes. Every failure it
// returns is either a *core.ValidationError or a *core.OperationError.
type Service struct {
	router   core.Router
	resolver core.CredentialResolver
	connect  core.Connector
	surfaces *SurfaceRegistry
	logger   *zap.Logger
	timeout  time.Duration
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		router:   opts.Router,
		resolver: opts.Resolver,
		connect:  opts.Connector,
		logger:   logger.Named("study"),
		timeout:  opts.Timeout,
	}
	s.surfaces = NewSurfaceRegistry(opts.SessionTTL, s.startChat)
	return s
}

func (s *Service) Router() core.Router {
	return s.router
}

func (s *Service) Surfaces() *SurfaceRegistry {
	return s.surfaces
}

// Chat ensures the surface has a session matching the search toggle and sends
// one turn on it. Flipping the toggle starts a new session without history.
func (s *Service) Chat(ctx context.Context, surfaceID string, search bool, text string) (core.NormalizedResult, *core.ChatSession, error) {
	if strings.TrimSpace(text) == "" {
		return core.NormalizedResult{}, nil, core.NewValidationError("message", "message is required")
	}
	cfg := s.router.Route(core.ModeChat, search)
	session, err := s.surfaces.Get(surfaceID).EnsureSession(ctx, cfg)
	if err != nil {
		s.logger.Warn("chat session unavailable",
			zap.String("surface", surfaceID), zap.String("kind", core.KindOf(err).String()), zap.Error(err))
		return core.NormalizedResult{}, nil, err
	}
	result, err := s.ChatTurn(ctx, session, text)
	return result, session, err
}

// ChatTurn sends text on the given session. The turn runs against this
// session even if the surface has moved on to another one.
func (s *Service) ChatTurn(ctx context.Context, session *core.ChatSession, text string) (core.NormalizedResult, error) {
	if session == nil {
		return core.NormalizedResult{}, core.NewValidationError("session", "no live chat session")
	}
	if strings.TrimSpace(text) == "" {
		return core.NormalizedResult{}, core.NewValidationError("message", "message is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	resp, err := session.Send(ctx, text)
	if err != nil {
		err = core.BackendFailure(core.ModeChat, err)
		s.observe(core.ModeChat, session.Config, started, core.NormalizedResult{}, err)
		return core.NormalizedResult{}, err
	}
	result, err := core.Normalize(core.ModeChat, resp)
	s.observe(core.ModeChat, session.Config, started, result, err)
	return result, err
}

// ResetChat drops the surface's session; the next turn starts a fresh one.
func (s *Service) ResetChat(surfaceID string) {
	s.surfaces.Reset(surfaceID)
}

// AnalyzeHomework explains the pictured exercise. An empty instruction is
// replaced by the default step-by-step request.
func (s *Service) AnalyzeHomework(ctx context.Context, image core.MediaPayload, instruction string) (core.NormalizedResult, error) {
	payload, raw, err := core.DecodeMedia(image.Data, image.MIMEType)
	if err != nil {
		return core.NormalizedResult{}, err
	}
	cfg := s.router.Route(core.ModeHomeworkAnalysis, false)
	contents := gemini.ImageContents(raw, payload.MIMEType, core.HomeworkPrompt(instruction))
	return s.generate(ctx, core.ModeHomeworkAnalysis, cfg, contents)
}

// GenerateImage draws prompt. An empty aspect ratio means square.
func (s *Service) GenerateImage(ctx context.Context, prompt string, aspectRatio core.AspectRatio) (core.NormalizedResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return core.NormalizedResult{}, core.NewValidationError("prompt", "prompt is required")
	}
	ar, err := core.ParseAspectRatio(string(aspectRatio))
	if err != nil {
		return core.NormalizedResult{}, err
	}
	cfg := s.router.Route(core.ModeImageGeneration, false).WithAspectRatio(ar)
	return s.generate(ctx, core.ModeImageGeneration, cfg, gemini.TextContents(prompt))
}

// EditImage applies a free-text instruction to image.
func (s *Service) EditImage(ctx context.Context, image core.MediaPayload, instruction string) (core.NormalizedResult, error) {
	payload, raw, err := core.DecodeMedia(image.Data, image.MIMEType)
	if err != nil {
		return core.NormalizedResult{}, err
	}
	if strings.TrimSpace(instruction) == "" {
		return core.NormalizedResult{}, core.NewValidationError("instruction", "instruction is required")
	}
	cfg := s.router.Route(core.ModeImageEditing, false)
	contents := gemini.ImageContents(raw, payload.MIMEType, instruction)
	return s.generate(ctx, core.ModeImageEditing, cfg, contents)
}

func (s *Service) generate(ctx context.Context, mode core.InteractionMode, cfg core.ModelConfig, contents []*genai.Content) (core.NormalizedResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	llm, err := s.llm(ctx, mode)
	if err != nil {
		s.observe(mode, cfg, started, core.NormalizedResult{}, err)
		return core.NormalizedResult{}, err
	}
	resp, err := llm.Generate(ctx, cfg, contents)
	if err != nil {
		err = core.BackendFailure(mode, err)
		s.observe(mode, cfg, started, core.NormalizedResult{}, err)
		return core.NormalizedResult{}, err
	}
	result, err := core.Normalize(mode, resp)
	s.observe(mode, cfg, started, result, err)
	return result, err
}

// llm resolves the credential before anything touches the network.
func (s *Service) llm(ctx context.Context, mode core.InteractionMode) (core.LLM, error) {
	credential, err := s.resolver.Resolve()
	if err != nil {
		if core.KindOf(err) != core.KindMissingCredential {
			err = core.MissingCredential(err)
		}
		return nil, core.Classify(mode, err)
	}
	llm, err := s.connect(ctx, credential)
	if err != nil {
		return nil, core.BackendFailure(mode, err)
	}
	return llm, nil
}

func (s *Service) startChat(ctx context.Context, cfg core.ModelConfig) (core.LLMChat, error) {
	llm, err := s.llm(ctx, core.ModeChat)
	if err != nil {
		return nil, err
	}
	chat, err := llm.StartChat(ctx, cfg)
	if err != nil {
		return nil, core.BackendFailure(core.ModeChat, err)
	}
	s.logger.Info("chat session started",
		zap.String("model", cfg.ModelID), zap.Bool("search", cfg.HasTool(core.CapabilityWebSearch)))
	return chat, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) observe(mode core.InteractionMode, cfg core.ModelConfig, started time.Time, result core.NormalizedResult, err error) {
	fields := []zap.Field{
		zap.String("mode", mode.String()),
		zap.String("model", cfg.ModelID),
		zap.Duration("elapsed", time.Since(started)),
	}
	if err != nil {
		s.logger.Error("interaction failed",
			append(fields, zap.String("kind", core.KindOf(err).String()), zap.Error(err))...)
		return
	}
	s.logger.Info("interaction finished",
		append(fields,
			zap.String("result", result.Kind.String()),
			zap.Int("citations", len(result.Citations)),
			zap.Int32("total_tokens", result.Stats.TotalTokenCount))...)
}
