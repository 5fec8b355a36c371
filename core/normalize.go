package core

import (
	"strings"

	"google.golang.org/genai"

	"saes/study-app/tools"
)

type partKind int

const (
	partOther partKind = iota
	partImage
	partText
)

func classifyPart(part *genai.Part) partKind {
	switch {
	case part == nil:
		return partOther
	case part.InlineData != nil && len(part.InlineData.Data) > 0:
		return partImage
	case part.Text != "" && !part.Thought:
		return partText
	}
	return partOther
}

func firstCandidate(resp *genai.GenerateContentResponse) *genai.Candidate {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	return resp.Candidates[0]
}

func candidateParts(c *genai.Candidate) []*genai.Part {
	if c == nil || c.Content == nil {
		return nil
	}
	return c.Content.Parts
}

// Normalize reduces a raw backend response to the payload relevant to mode.
//
// Text modes join the text parts of the first candidate and fail with
// NoUsablePayload when that is blank; chat also collects web grounding
// citations in response order. Image modes take the first inline image part
// (later ones are dropped), fall back to the first text part as a Refusal,
// and fail with NoUsablePayload when neither exists.
func Normalize(mode InteractionMode, resp *genai.GenerateContentResponse) (NormalizedResult, error) {
	candidate := firstCandidate(resp)
	parts := candidateParts(candidate)
	if len(parts) == 0 {
		return NormalizedResult{}, NoUsablePayload(mode, "response has no content parts")
	}

	var (
		result NormalizedResult
		err    error
	)
	if mode.ProducesImage() {
		result, err = normalizeImage(mode, parts)
	} else {
		result, err = normalizeText(mode, parts)
		if err == nil && mode == ModeChat && candidate.GroundingMetadata != nil {
			result.Citations = Citations(candidate.GroundingMetadata)
			result.Suggestions = suggestions(candidate.GroundingMetadata)
		}
	}
	if err != nil {
		return NormalizedResult{}, err
	}
	result.Stats = StatsOf(resp)
	return result, nil
}

func normalizeText(mode InteractionMode, parts []*genai.Part) (NormalizedResult, error) {
	var sb strings.Builder
	for _, part := range parts {
		if classifyPart(part) == partText {
			sb.WriteString(part.Text)
		}
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return NormalizedResult{}, NoUsablePayload(mode, "response has no text")
	}
	return TextResult(text, nil), nil
}

func normalizeImage(mode InteractionMode, parts []*genai.Part) (NormalizedResult, error) {
	refusal := -1
	for i, part := range parts {
		switch classifyPart(part) {
		case partImage:
			return ImageResult(NewMediaPayload(part.InlineData.Data, OutputMIMEType)), nil
		case partText:
			if refusal < 0 {
				refusal = i
			}
		}
	}
	if refusal >= 0 {
		return RefusalResult(parts[refusal].Text), nil
	}
	return NormalizedResult{}, NoUsablePayload(mode, "response has neither image nor text")
}

// Citations lists the web sources of meta in response order.
func Citations(meta *genai.GroundingMetadata) []Citation {
	if meta == nil {
		return nil
	}
	var citations []Citation
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		citations = append(citations, Citation{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return citations
}

func suggestions(meta *genai.GroundingMetadata) []SearchSuggestion {
	if meta.SearchEntryPoint == nil || meta.SearchEntryPoint.RenderedContent == "" {
		return nil
	}
	found, err := tools.ParseSearchSuggestions(meta.SearchEntryPoint.RenderedContent)
	if err != nil {
		return nil
	}
	return found
}

func StatsOf(resp *genai.GenerateContentResponse) Stats {
	if resp == nil || resp.UsageMetadata == nil {
		return Stats{}
	}
	return Stats{
		InputTokenCount:  resp.UsageMetadata.PromptTokenCount,
		OutputTokenCount: resp.UsageMetadata.CandidatesTokenCount,
		TotalTokenCount:  resp.UsageMetadata.TotalTokenCount,
	}
}
