package gemini

import (
	"google.golang.org/genai"

	"saes/study-app/core"
)

// GenerateConfig translates a ModelConfig into the SDK request configuration.
func GenerateConfig(cfg core.ModelConfig) (*genai.GenerateContentConfig, error) {
	config := &genai.GenerateContentConfig{}
	if cfg.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: cfg.SystemInstruction}}}
	}
	for _, capability := range cfg.Tools {
		tool, err := GetToolRegistry().GetTool(capability)
		if err != nil {
			return nil, err
		}
		config.Tools = append(config.Tools, tool)
	}
	if cfg.ImageParameters != nil && cfg.ImageParameters.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: string(cfg.ImageParameters.AspectRatio)}
	}
	return config, nil
}

// TextContents is a single user turn holding text.
func TextContents(text string) []*genai.Content {
	return []*genai.Content{{Role: genai.RoleUser, Parts: []*genai.Part{{Text: text}}}}
}

// ImageContents is a single user turn: the inline image first, then the text.
func ImageContents(image []byte, mimeType string, text string) []*genai.Content {
	return []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
			{Text: text},
		},
	}}
}
