package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts upload endpoints. Uploading and deleting require
// auth; property file listings are public alongside the listing itself.
func RegisterRoutes(public, authenticated *gin.RouterGroup, h *Handler) {
	public.GET("/properties/:id/files", h.ListByProperty)

	uploads := authenticated.Group("/uploads")
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMy)
		uploads.GET("/:id", h.GetByID)
		uploads.PUT("/:id/approve", h.Approve)
		uploads.DELETE("/:id", h.Delete)
	}
}
