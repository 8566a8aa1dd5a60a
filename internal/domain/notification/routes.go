package notification

import (
	"estatelink/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers notification routes under the protected group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	n := r.Group("/notifications")
	{
		n.GET("", h.List)
		n.GET("/unread-count", h.UnreadCount)
		n.POST("/:id/read", h.MarkRead)
		n.POST("/read-all", h.MarkAllRead)
		n.DELETE("/:id", h.Delete)
	}
}

// RegisterStream registers the websocket stream. It authenticates through the
// token query parameter and must stay outside the JWT middleware group.
func RegisterStream(r *gin.RouterGroup, hub *Hub, jwtService *jwt.Service) {
	r.GET("/notifications/stream", hub.ServeWS(jwtService))
}
