package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"saes/study-app/core"
)

func statusOf(err error) int {
	var valErr *core.ValidationError
	if errors.As(err, &valErr) && valErr.TooLarge {
		return http.StatusRequestEntityTooLarge
	}
	switch core.KindOf(err) {
	case core.KindInvalidInput:
		return http.StatusBadRequest
	case core.KindMissingCredential:
		return http.StatusServiceUnavailable
	case core.KindNoUsablePayload:
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

// bindError turns a request decoding failure into a validation error.
func bindError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		tooLarge := core.NewValidationError("body", "request body exceeds %d bytes", maxErr.Limit)
		tooLarge.TooLarge = true
		return tooLarge
	}
	return core.NewValidationError("body", "%v", err)
}

// abortWithError writes the localized message for err; backend detail stays in the log.
func (h *Handler) abortWithError(c *gin.Context, mode core.InteractionMode, err error, reply *core.Message) {
	h.logger.Sugar().Debugw("request rejected", "mode", mode.String(), "path", c.FullPath(), "error", err)
	c.AbortWithStatusJSON(statusOf(err), ErrorResponse{
		Kind:    core.KindOf(err).String(),
		Message: core.UserMessage(mode, err),
		Reply:   reply,
	})
}
