package profile

import (
	"estatelink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts profile endpoints on the authenticated group and
// user administration endpoints behind the admin role check.
func RegisterRoutes(authenticated *gin.RouterGroup, h *Handler) {
	me := authenticated.Group("/profile")
	{
		me.GET("", h.Get)
		me.PUT("", h.Update)
		me.PUT("/password", h.ChangePassword)
	}

	admin := authenticated.Group("/admin/users", middleware.AdminOnly())
	{
		admin.GET("", h.ListUsers)
		admin.PUT("/:id/status", h.SetUserStatus)
	}
}
