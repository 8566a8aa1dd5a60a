package admin

import (
	"estatelink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the admin console endpoints behind the admin role
// check. User administration lives in the profile module.
func RegisterRoutes(authenticated *gin.RouterGroup, h *Handler) {
	g := authenticated.Group("/admin", middleware.AdminOnly())
	{
		g.GET("/properties/pending", h.PendingProperties)
		g.PUT("/properties/:id/approve", h.ApproveProperty)
		g.PUT("/properties/:id/reject", h.RejectProperty)
		g.GET("/subscriptions/pending", h.PendingSubscriptions)
		g.PUT("/subscriptions/:id/activate", h.ActivateSubscription)
		g.GET("/statistics", h.GetStatistics)
	}
}
