package http

import (
	"github.com/gin-gonic/gin"

	"voicetask/internal/capture"
	"voicetask/pkg/log"
)

// Handler is the public interface for the capture HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Capture(c *gin.Context)
	Recent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc capture.UseCase
}

// New creates a new HTTP handler for the capture domain.
func New(l log.Logger, uc capture.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
