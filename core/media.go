package core

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxMediaBytes is the decoded upload limit, checked before any request is built.
const MaxMediaBytes = 5 * 1024 * 1024

const OutputMIMEType = "image/png"

// MediaPayload carries image bytes as standard base64 text.
type MediaPayload struct {
	Data     string `json:"data"`
	MIMEType string `json:"mimeType"`
}

func NewMediaPayload(data []byte, mimeType string) MediaPayload {
	return MediaPayload{Data: base64.StdEncoding.EncodeToString(data), MIMEType: mimeType}
}

// DecodeMedia validates an uploaded image. A data URL prefix is stripped and
// its mime type used when mimeType is empty; otherwise the type is sniffed.
// The decoded bytes must be at most MaxMediaBytes and must be an image.
func DecodeMedia(data string, mimeType string) (MediaPayload, []byte, error) {
	data = strings.TrimSpace(data)
	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return MediaPayload{}, nil, NewValidationError("image", "malformed data URL")
		}
		if mimeType == "" {
			mimeType = strings.TrimSuffix(header, ";base64")
		}
		data = body
	}
	if data == "" {
		return MediaPayload{}, nil, NewValidationError("image", "image is required")
	}
	if base64.StdEncoding.DecodedLen(len(data)) > MaxMediaBytes+2 {
		return MediaPayload{}, nil, tooLarge(base64.StdEncoding.DecodedLen(len(data)))
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return MediaPayload{}, nil, NewValidationError("image", "image is not valid base64")
	}
	if len(raw) > MaxMediaBytes {
		return MediaPayload{}, nil, tooLarge(len(raw))
	}
	if len(raw) == 0 {
		return MediaPayload{}, nil, NewValidationError("image", "image is empty")
	}
	if mimeType == "" {
		mimeType = mimetype.Detect(raw).String()
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")
	if !strings.HasPrefix(mimeType, "image/") {
		return MediaPayload{}, nil, NewValidationError("image", "unsupported media type %q", mimeType)
	}
	return MediaPayload{Data: data, MIMEType: mimeType}, raw, nil
}

func tooLarge(size int) *ValidationError {
	err := NewValidationError("image", "image has %d bytes, limit is %d", size, MaxMediaBytes)
	err.TooLarge = true
	return err
}

// Validate re-checks the payload invariants.
func (p MediaPayload) Validate() error {
	_, _, err := DecodeMedia(p.Data, p.MIMEType)
	return err
}

func (p MediaPayload) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(p.Data)
}

// DataURL renders the payload for direct display in a browser.
func (p MediaPayload) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", p.MIMEType, p.Data)
}

// DownloadName is the suggested file name for a generated image.
func DownloadName(at time.Time) string {
	return fmt.Sprintf("sesi-art-%d.png", at.UnixMilli())
}
