package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"saes/study-app/core"
	"saes/study-app/services/study_service"
	"saes/study-app/tools"
)

const SurfaceHeader = "X-Surface-Id"

type Handler struct {
	svc     *study_service.Service
	catalog []tools.ModeDescriptor
	logger  *zap.Logger
	now     func() time.Time
}

func NewHandler(svc *study_service.Service, logger *zap.Logger) (*Handler, error) {
	catalog, err := buildCatalog(svc.Router().Models())
	if err != nil {
		return nil, err
	}
	return &Handler{svc: svc, catalog: catalog, logger: logger, now: time.Now}, nil
}

func buildCatalog(models core.ModelTable) ([]tools.ModeDescriptor, error) {
	type entry struct {
		mode        core.InteractionMode
		description string
		endpoint    string
		models      []string
		input       any
	}
	entries := []entry{
		{core.ModeChat, "Tutoring chat, optionally grounded with web search", "/api/chat",
			[]string{models.ChatReasoning, models.ChatSearch}, &ChatRequest{}},
		{core.ModeHomeworkAnalysis, "Step-by-step explanation of a homework photo", "/api/homework",
			[]string{models.Vision}, &HomeworkRequest{}},
		{core.ModeImageGeneration, "Text-to-image generation", "/api/images/generate",
			[]string{models.Image}, &GenerateImageRequest{}},
		{core.ModeImageEditing, "Instruction-driven image editing", "/api/images/edit",
			[]string{models.Image}, &EditImageRequest{}},
	}
	catalog := make([]tools.ModeDescriptor, 0, len(entries))
	for _, e := range entries {
		desc, err := tools.NewModeDescriptor(e.mode.String(), e.description, http.MethodPost, e.endpoint, e.models, e.input)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, desc)
	}
	return catalog, nil
}

func (h *Handler) Modes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// surfaceID returns the caller's surface, minting one for new clients.
func surfaceID(c *gin.Context) string {
	id := c.GetHeader(SurfaceHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SurfaceHeader, id)
	return id
}

func (h *Handler) Welcome(c *gin.Context) {
	surfaceID(c)
	c.JSON(http.StatusOK, core.NewWelcomeMessage())
}

func (h *Handler) Chat(c *gin.Context) {
	surface := surfaceID(c)
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWithError(c, core.ModeChat, bindError(err), nil)
		return
	}

	result, session, err := h.svc.Chat(c.Request.Context(), surface, req.Search, req.Message)
	if err != nil {
		reply := core.NewErrorMessage(core.UserMessage(core.ModeChat, err))
		h.abortWithError(c, core.ModeChat, err, &reply)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{
		SurfaceId: surface,
		SessionId: session.Id,
		Message:   core.NewAssistantMessage(result),
		Stats:     result.Stats,
	})
}

func (h *Handler) ResetChat(c *gin.Context) {
	h.svc.ResetChat(surfaceID(c))
	c.Status(http.StatusNoContent)
}

func (h *Handler) Homework(c *gin.Context) {
	var req HomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWithError(c, core.ModeHomeworkAnalysis, bindError(err), nil)
		return
	}
	result, err := h.svc.AnalyzeHomework(c.Request.Context(), req.Image.Payload(), req.Instruction)
	h.respond(c, core.ModeHomeworkAnalysis, result, err)
}

func (h *Handler) GenerateImage(c *gin.Context) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWithError(c, core.ModeImageGeneration, bindError(err), nil)
		return
	}
	result, err := h.svc.GenerateImage(c.Request.Context(), req.Prompt, core.AspectRatio(req.AspectRatio))
	h.respond(c, core.ModeImageGeneration, result, err)
}

func (h *Handler) EditImage(c *gin.Context) {
	var req EditImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWithError(c, core.ModeImageEditing, bindError(err), nil)
		return
	}
	result, err := h.svc.EditImage(c.Request.Context(), req.Image.Payload(), req.Instruction)
	h.respond(c, core.ModeImageEditing, result, err)
}

func (h *Handler) respond(c *gin.Context, mode core.InteractionMode, result core.NormalizedResult, err error) {
	if err != nil {
		h.abortWithError(c, mode, err, nil)
		return
	}
	c.JSON(http.StatusOK, newResultResponse(result, h.now()))
}
