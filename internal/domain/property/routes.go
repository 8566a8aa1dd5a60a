package property

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers unauthenticated search/browse routes.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	props := r.Group("/properties")
	{
		props.GET("/search", h.Search)
		props.GET("/:id", h.Get)
		props.GET("/:id/units", h.ListUnits)
	}
}

// RegisterUserRoutes registers routes for any authenticated user.
func RegisterUserRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/properties/:id/inquire", h.Inquire)
}

// RegisterManagerRoutes registers routes that require role=manager.
func RegisterManagerRoutes(r *gin.RouterGroup, h *Handler) {
	props := r.Group("/manager/properties")
	{
		props.POST("", h.Create)
		props.GET("", h.ListMine)
		props.PATCH("/:id", h.Update)
		props.DELETE("/:id", h.Delete)
		props.POST("/:id/units", h.AddUnit)
		props.POST("/:id/portal", h.TogglePortal)
	}
}
