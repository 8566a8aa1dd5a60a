package tenancy

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts lease endpoints on the portal group.
func RegisterRoutes(portal *gin.RouterGroup, h *Handler) {
	g := portal.Group("/leases")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/mine", h.MyLease)
		g.PUT("/:id/end", h.End)
	}
}
