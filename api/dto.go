package api

import (
	"time"

	"saes/study-app/core"
)

type ImageInput struct {
	Data     string `json:"data" binding:"required" jsonschema_description:"Base64 image bytes, optionally as a data URL"`
	MIMEType string `json:"mimeType,omitempty" jsonschema_description:"Image MIME type; sniffed from the bytes when empty"`
}

func (i ImageInput) Payload() core.MediaPayload {
	return core.MediaPayload{Data: i.Data, MIMEType: i.MIMEType}
}

type ChatRequest struct {
	Message string `json:"message" binding:"notblank" jsonschema_description:"The student's question"`
	Search  bool   `json:"search,omitempty" jsonschema_description:"Ground the answer with live web search"`
}

type HomeworkRequest struct {
	Image       ImageInput `json:"image" binding:"required"`
	Instruction string     `json:"instruction,omitempty" jsonschema_description:"What to explain; defaults to a step-by-step walkthrough"`
}

type GenerateImageRequest struct {
	Prompt      string `json:"prompt" binding:"notblank" jsonschema_description:"Description of the image to create"`
	AspectRatio string `json:"aspectRatio,omitempty" binding:"aspectratio" jsonschema:"enum=1:1,enum=16:9,enum=4:3" jsonschema_description:"Defaults to 1:1"`
}

type EditImageRequest struct {
	Image       ImageInput `json:"image" binding:"required"`
	Instruction string     `json:"instruction" binding:"notblank" jsonschema_description:"Free-text edit instruction"`
}

type ChatResponse struct {
	SurfaceId string       `json:"surfaceId"`
	SessionId string       `json:"sessionId"`
	Message   core.Message `json:"message"`
	Stats     core.Stats   `json:"stats"`
}

type ImageOutput struct {
	Data     string `json:"data"`
	MIMEType string `json:"mimeType"`
	DataURL  string `json:"dataUrl"`
	FileName string `json:"fileName"`
}

// ResultResponse carries a refusal banner in Message.
type ResultResponse struct {
	Kind    core.ResultKind `json:"kind"`
	Text    string          `json:"text,omitempty"`
	Message string          `json:"message,omitempty"`
	Image   *ImageOutput    `json:"image,omitempty"`
	Stats   core.Stats      `json:"stats"`
}

func newResultResponse(result core.NormalizedResult, now time.Time) ResultResponse {
	resp := ResultResponse{Kind: result.Kind, Text: result.Text, Stats: result.Stats}
	switch result.Kind {
	case core.ResultImage:
		resp.Image = &ImageOutput{
			Data:     result.Image.Data,
			MIMEType: result.Image.MIMEType,
			DataURL:  result.Image.DataURL(),
			FileName: core.DownloadName(now),
		}
	case core.ResultRefusal:
		resp.Message = core.RefusalMessage(result.Text)
	}
	return resp
}

type ErrorResponse struct {
	Kind    string        `json:"kind"`
	Message string        `json:"message"`
	Reply   *core.Message `json:"reply,omitempty"`
}
