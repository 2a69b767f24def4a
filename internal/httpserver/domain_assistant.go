package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "nutrition-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain registers /api/v1/assistant/chat.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC, srv.assistantCfg)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered at POST /api/v1/assistant/chat")
	return nil
}
