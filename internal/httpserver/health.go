package httpserver

import (
	"logistic-api/pkg/errors"
	"logistic-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "logistic-api"
	serviceVersion = "1.0.0"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service and its document store are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Failure 503 {object} response.Resp "Document store unreachable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.store.Ping(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck.Ping: %v", err)
		response.HttpError(c, errors.NewHTTPError(503, "Document store connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"version": serviceVersion,
		"service": serviceName,
		"store":   "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.store.Ping(c.Request.Context()); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Document store not available"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": serviceVersion,
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
