package lib

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type promptBody struct {
	Prompt      string `json:"prompt" binding:"notblank"`
	AspectRatio string `json:"aspectRatio" binding:"aspectratio"`
}

func TestValidatorCustomTags(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateStruct(&promptBody{Prompt: "um gato"}))
	assert.NoError(t, v.ValidateStruct(promptBody{Prompt: "um gato", AspectRatio: "4:3"}))

	err := v.ValidateStruct(&promptBody{Prompt: " \t", AspectRatio: "2:1"})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "prompt", errs[0].Field())
	assert.Equal(t, "notblank", errs[0].Tag())
	assert.Equal(t, "aspectRatio", errs[1].Field())
}

func TestValidatorIgnoresNonStructs(t *testing.T) {
	v := NewValidator()
	var nilBody *promptBody

	assert.NoError(t, v.ValidateStruct(nil))
	assert.NoError(t, v.ValidateStruct(nilBody))
	assert.NoError(t, v.ValidateStruct([]string{"x"}))
	assert.IsType(t, &validator.Validate{}, v.Engine())
}
