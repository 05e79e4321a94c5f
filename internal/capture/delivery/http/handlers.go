package http

import (
	"github.com/gin-gonic/gin"

	"voicetask/pkg/response"
)

// Parse godoc
// @Summary     Parse an utterance
// @Description Converts a transcribed utterance into structured actions without storing anything.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Utterance to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/capture/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toParseInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Capture godoc
// @Summary     Capture an utterance
// @Description Parses the utterance, stores the resulting records in the recent cache, and exports timed events to the calendar when configured.
// @Tags        Capture
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Utterance to capture"
// @Success     200  {object} captureResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/capture [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Capture(ctx, req.toCaptureInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Capture: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCaptureResp(output))
}

// Recent godoc
// @Summary     List recent captures
// @Description Returns the capture records still held in the recent cache, newest first.
// @Tags        Capture
// @Produce     json
// @Success     200 {object} recentResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/capture/recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Recent(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRecentResp(output))
}
