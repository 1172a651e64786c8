package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"wardrobe-catalog/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Wardrobe Catalog API"
	HealthVersion = "1.0.0"
	ServiceName   = "wardrobe-catalog"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":      state,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
		"uptime":      time.Since(srv.startedAt).Round(time.Second).String(),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck handles readiness check. New refuses to build a server without a catalog backend.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
