package http

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	a := r.Group("/auth")
	{
		a.POST("/token", h.Token)
	}
}
