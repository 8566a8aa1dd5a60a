package maintenance

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts maintenance endpoints on the portal group.
func RegisterRoutes(portal *gin.RouterGroup, h *Handler) {
	g := portal.Group("/maintenance")
	{
		g.GET("", h.List)
		g.POST("", h.File)
		g.PUT("/:id/status", h.UpdateStatus)
	}
}
