package http

import (
	"github.com/gin-gonic/gin"

	"nutrition-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints. Chat is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
