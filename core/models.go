package core

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type InteractionMode int

const (
	ModeChat InteractionMode = iota
	ModeHomeworkAnalysis
	ModeImageGeneration
	ModeImageEditing
)

var modeNames = map[InteractionMode]string{
	ModeChat:             "chat",
	ModeHomeworkAnalysis: "homework",
	ModeImageGeneration:  "image-generation",
	ModeImageEditing:     "image-editing",
}

func (m InteractionMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Modes lists every interaction mode in catalog order.
func Modes() []InteractionMode {
	return []InteractionMode{ModeChat, ModeHomeworkAnalysis, ModeImageGeneration, ModeImageEditing}
}

// ProducesImage reports whether the mode expects an image back.
func (m InteractionMode) ProducesImage() bool {
	return m == ModeImageGeneration || m == ModeImageEditing
}

// Capability names a backend tool attached to a request.
type Capability string

const CapabilityWebSearch Capability = "web-search"

type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectWide      AspectRatio = "16:9"
	AspectLandscape AspectRatio = "4:3"
)

var SupportedAspectRatios = []AspectRatio{AspectSquare, AspectWide, AspectLandscape}

// ParseAspectRatio returns the default square ratio for an empty value.
func ParseAspectRatio(value string) (AspectRatio, error) {
	if value == "" {
		return AspectSquare, nil
	}
	ar := AspectRatio(value)
	if !slices.Contains(SupportedAspectRatios, ar) {
		return "", NewValidationError("aspectRatio", "unsupported aspect ratio %q", value)
	}
	return ar, nil
}

type ImageParameters struct {
	AspectRatio AspectRatio `json:"aspectRatio"`
}

// ModelConfig is the immutable request configuration derived by the Router.
type ModelConfig struct {
	ModelID           string           `json:"modelId"`
	SystemInstruction string           `json:"systemInstruction,omitempty"`
	Tools             []Capability     `json:"tools,omitempty"`
	ImageParameters   *ImageParameters `json:"imageParameters,omitempty"`
}

func (c ModelConfig) Equal(other ModelConfig) bool {
	if c.ModelID != other.ModelID || c.SystemInstruction != other.SystemInstruction {
		return false
	}
	if !slices.Equal(c.Tools, other.Tools) {
		return false
	}
	if (c.ImageParameters == nil) != (other.ImageParameters == nil) {
		return false
	}
	return c.ImageParameters == nil || *c.ImageParameters == *other.ImageParameters
}

// HasTool reports whether the capability is attached.
func (c ModelConfig) HasTool(tool Capability) bool {
	return slices.Contains(c.Tools, tool)
}

// WithAspectRatio returns a copy of c carrying the given aspect ratio.
func (c ModelConfig) WithAspectRatio(ar AspectRatio) ModelConfig {
	c.Tools = slices.Clone(c.Tools)
	c.ImageParameters = &ImageParameters{AspectRatio: ar}
	return c
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Label is the text shown for the citation link.
func (c Citation) Label() string {
	if c.Title != "" {
		return c.Title
	}
	return c.URI
}

type Message struct {
	Id          string             `json:"id"`
	Role        Role               `json:"role"`
	Content     string             `json:"content"`
	Timestamp   time.Time          `json:"timestamp"`
	IsError     bool               `json:"isError,omitempty"`
	Citations   []Citation         `json:"citations,omitempty"`
	Suggestions []SearchSuggestion `json:"suggestions,omitempty"`
}

const (
	WelcomeText  = "Olá! Eu sou seu assistente de estudos do SAES! Como posso te ajudar hoje? Posso responder perguntas complexas ou buscar informações atualizadas na web."
	FallbackText = "Desculpe, não consegui gerar uma resposta."
)

func newMessage(role Role, content string) Message {
	return Message{
		Id:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func NewUserMessage(content string) Message {
	return newMessage(RoleUser, content)
}

func NewWelcomeMessage() Message {
	msg := newMessage(RoleAssistant, WelcomeText)
	msg.Id = "welcome"
	return msg
}

// NewAssistantMessage renders a chat result. Refusals are flagged as errors.
func NewAssistantMessage(result NormalizedResult) Message {
	msg := newMessage(RoleAssistant, result.Text)
	msg.Citations = result.Citations
	msg.Suggestions = result.Suggestions
	msg.IsError = result.Kind == ResultRefusal
	return msg
}

func NewErrorMessage(content string) Message {
	msg := newMessage(RoleAssistant, content)
	msg.IsError = true
	return msg
}
