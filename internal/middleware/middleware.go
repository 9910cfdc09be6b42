package middleware

import (
	"strings"

	"logistic-api/pkg/log"
	"logistic-api/pkg/response"
	"logistic-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	bearerPrefix    = "Bearer "
	RequestIDHeader = "X-Request-ID"
)

// Auth validates the bearer token and stores the payload and scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.l.Warnf(ctx, "Missing Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(ctx, "Invalid Authorization header format | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			m.l.Warnf(ctx, "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequestID propagates X-Request-ID, generating one when absent, and tags
// every log line of the request with it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), m.l, id))
		c.Next()
	}
}
