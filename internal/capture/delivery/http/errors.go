package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voicetask/internal/capture"
	"voicetask/pkg/response"
)

// respondError translates domain errors into HTTP responses. Validation-class
// errors surface their message; anything unexpected becomes an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, capture.ErrEmptyInput), errors.Is(err, capture.ErrNoActionsParsed):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
