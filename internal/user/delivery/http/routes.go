package http

import (
	"logistic-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the user routes. Every route requires a bearer token.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users", mw.Auth())
	{
		users.GET("", h.List)
		users.POST("/search", h.Search)
		users.GET("/:id", h.Detail)
		users.POST("", h.Create)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
