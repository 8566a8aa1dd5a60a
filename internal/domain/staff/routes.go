package staff

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts staff endpoints on the portal group (JWT plus portal
// resolution middleware applied by the caller).
func RegisterRoutes(portal *gin.RouterGroup, h *Handler) {
	g := portal.Group("/staff")
	{
		g.GET("", h.List)
		g.POST("", h.Add)
		g.DELETE("/:id", h.Remove)
	}
}
