package http

import (
	"github.com/gin-gonic/gin"

	"voicetask/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	capture := rg.Group("/capture")
	{
		capture.POST("", mw.RateLimit(), h.Capture)
		capture.POST("/parse", mw.RateLimit(), h.Parse)
		capture.GET("/recent", h.Recent)
	}
}
