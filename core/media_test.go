package core

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeMediaSniffsMime(t *testing.T) {
	raw := pngBytes(t)

	payload, decoded, err := DecodeMedia(base64.StdEncoding.EncodeToString(raw), "")

	require.NoError(t, err)
	assert.Equal(t, "image/png", payload.MIMEType)
	assert.Equal(t, raw, decoded)
}

func TestDecodeMediaDataURL(t *testing.T) {
	raw := pngBytes(t)
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	payload, decoded, err := DecodeMedia(dataURL, "")

	require.NoError(t, err)
	assert.Equal(t, "image/png", payload.MIMEType)
	assert.Equal(t, raw, decoded)
	assert.Equal(t, dataURL, payload.DataURL())
}

func TestDecodeMediaKeepsDeclaredMime(t *testing.T) {
	payload, _, err := DecodeMedia(base64.StdEncoding.EncodeToString(pngBytes(t)), "image/jpeg; charset=binary")

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", payload.MIMEType)
}

func TestDecodeMediaRejects(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		mimeType string
		tooLarge bool
	}{
		{name: "empty", data: ""},
		{name: "not base64", data: "%%%"},
		{name: "malformed data url", data: "data:image/png,abc"},
		{name: "not an image", data: base64.StdEncoding.EncodeToString([]byte("hello, plain text"))},
		{name: "declared non image", data: base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), mimeType: "application/pdf"},
		{name: "six mebibytes", data: base64.StdEncoding.EncodeToString(make([]byte, 6*1024*1024)), mimeType: "image/png", tooLarge: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeMedia(tt.data, tt.mimeType)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.tooLarge, valErr.TooLarge)
		})
	}
}

func TestDecodeMediaAtLimit(t *testing.T) {
	raw := make([]byte, MaxMediaBytes)
	_, _, err := DecodeMedia(base64.StdEncoding.EncodeToString(raw), "image/png")
	assert.NoError(t, err)

	raw = append(raw, 0)
	_, _, err = DecodeMedia(base64.StdEncoding.EncodeToString(raw), "image/png")
	assert.Equal(t, msgTooLarge, UserMessage(ModeImageEditing, err))
}

func TestMediaPayloadRoundTrip(t *testing.T) {
	raw := pngBytes(t)
	payload := NewMediaPayload(raw, OutputMIMEType)

	decoded, err := payload.Bytes()
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
	assert.NoError(t, payload.Validate())

	_, err = png.Decode(bytes.NewReader(decoded))
	assert.NoError(t, err)
}

func TestDownloadName(t *testing.T) {
	name := DownloadName(time.UnixMilli(1700000000123))
	assert.Equal(t, "sesi-art-1700000000123.png", name)
	assert.True(t, strings.HasSuffix(name, ".png"))
}
