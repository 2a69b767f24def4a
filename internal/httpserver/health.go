package httpserver

import (
	"github.com/gin-gonic/gin"

	"nutrition-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Nutrition assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "nutrition-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the wired collaborators. With no LLM providers the
// assistant still answers, on its deterministic fallbacks.
// @Summary Readiness Check
// @Description Report the catalog providers and language model providers in use
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	llm := srv.llmProviders
	if llm == nil {
		llm = []string{}
	}
	response.OK(c, gin.H{
		"status":        "ready",
		"service":       ServiceName,
		"catalog":       srv.catalogName,
		"llm_providers": llm,
		"llm_fallback":  len(llm) == 0,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
