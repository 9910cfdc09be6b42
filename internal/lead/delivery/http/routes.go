package http

import (
	"logistic-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	leads := r.Group("/leads", mw.Auth())
	{
		leads.GET("", h.List)
		leads.POST("/search", h.Search)
		leads.GET("/:id", h.Detail)
		leads.POST("", h.Create)
		leads.PATCH("/:id", h.Update)
		leads.DELETE("/:id", h.Delete)
	}
}
