package core

import (
	"encoding/json"
	"fmt"

	"saes/study-app/tools"
)

type ResultKind int

const (
	ResultText ResultKind = iota + 1
	ResultImage
	ResultRefusal
)

func (k ResultKind) String() string {
	switch k {
	case ResultText:
		return "text"
	case ResultImage:
		return "image"
	case ResultRefusal:
		return "refusal"
	}
	return "invalid"
}

func (k ResultKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ResultKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "text":
		*k = ResultText
	case "image":
		*k = ResultImage
	case "refusal":
		*k = ResultRefusal
	default:
		return fmt.Errorf("unknown result kind %q", s)
	}
	return nil
}

type SearchSuggestion = tools.SearchSuggestion

// NormalizedResult is one of Text, Image or Refusal, selected by Kind.
// Citations and Suggestions only accompany chat Text results.
type NormalizedResult struct {
	Kind        ResultKind         `json:"kind"`
	Text        string             `json:"text,omitempty"`
	Image       *MediaPayload      `json:"image,omitempty"`
	Citations   []Citation         `json:"citations,omitempty"`
	Suggestions []SearchSuggestion `json:"suggestions,omitempty"`
	Stats       Stats              `json:"stats"`
}

func TextResult(text string, citations []Citation) NormalizedResult {
	return NormalizedResult{Kind: ResultText, Text: text, Citations: citations}
}

func ImageResult(image MediaPayload) NormalizedResult {
	return NormalizedResult{Kind: ResultImage, Image: &image}
}

func RefusalResult(text string) NormalizedResult {
	return NormalizedResult{Kind: ResultRefusal, Text: text}
}
