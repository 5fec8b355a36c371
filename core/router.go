package core

// ModelTable names the backend model used by each routing rule.
type ModelTable struct {
	ChatSearch    string
	ChatReasoning string
	Vision        string
	Image         string
}

func DefaultModelTable() ModelTable {
	return ModelTable{
		ChatSearch:    "gemini-2.5-flash",
		ChatReasoning: "gemini-3-pro-preview",
		Vision:        "gemini-3-pro-preview",
		Image:         "gemini-2.5-flash-image",
	}
}

// Router maps an interaction mode and its toggle to a ModelConfig.
// Route is pure: it performs no I/O and never fails.
type Router struct {
	models ModelTable
}

func NewRouter(models ModelTable) Router {
	defaults := DefaultModelTable()
	if models.ChatSearch == "" {
		models.ChatSearch = defaults.ChatSearch
	}
	if models.ChatReasoning == "" {
		models.ChatReasoning = defaults.ChatReasoning
	}
	if models.Vision == "" {
		models.Vision = defaults.Vision
	}
	if models.Image == "" {
		models.Image = defaults.Image
	}
	return Router{models: models}
}

func (r Router) Models() ModelTable {
	return r.models
}

// Route returns a fresh ModelConfig. The toggle only matters for ModeChat,
// where it enables web search grounding.
func (r Router) Route(mode InteractionMode, toggle bool) ModelConfig {
	switch mode {
	case ModeHomeworkAnalysis:
		return ModelConfig{
			ModelID:           r.models.Vision,
			SystemInstruction: homeworkSystemInstruction,
		}
	case ModeImageGeneration:
		return ModelConfig{
			ModelID:         r.models.Image,
			ImageParameters: &ImageParameters{AspectRatio: AspectSquare},
		}
	case ModeImageEditing:
		return ModelConfig{ModelID: r.models.Image}
	}
	if toggle {
		return ModelConfig{
			ModelID:           r.models.ChatSearch,
			SystemInstruction: tutorPersona,
			Tools:             []Capability{CapabilityWebSearch},
		}
	}
	return ModelConfig{
		ModelID:           r.models.ChatReasoning,
		SystemInstruction: tutorPersona,
	}
}
