package billing

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts rent billing endpoints on the portal group.
func RegisterRoutes(portal *gin.RouterGroup, h *Handler) {
	g := portal.Group("/bills")
	{
		g.GET("", h.List)
		g.POST("", h.Generate)
		g.POST("/pay", h.Pay)
		g.POST("/mark-overdue", h.MarkOverdue)
	}
}
