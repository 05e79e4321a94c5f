package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"voicetask/internal/capture"
)

// parseReq is the shared request body for parse and capture.
type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=4000"`
	// ReferenceTime optionally pins the instant relative date cues resolve
	// against (RFC3339). Defaults to now in the service timezone.
	ReferenceTime string `json:"reference_time" binding:"omitempty"`

	referenceNow time.Time
}

// processParseReq binds and validates the request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	err := req.validate()
	return req, err
}

func (r *parseReq) validate() error {
	if r.ReferenceTime == "" {
		return nil
	}
	ref, err := time.Parse(time.RFC3339, r.ReferenceTime)
	if err != nil {
		return fmt.Errorf("reference_time must be RFC3339: %w", err)
	}
	r.referenceNow = ref
	return nil
}

func (r parseReq) toParseInput() capture.ParseInput {
	return capture.ParseInput{
		Text:         r.Text,
		ReferenceNow: r.referenceNow,
	}
}

func (r parseReq) toCaptureInput() capture.CaptureInput {
	return capture.CaptureInput{
		Text:         r.Text,
		ReferenceNow: r.referenceNow,
	}
}
