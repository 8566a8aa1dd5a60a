package subscription

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers routes that don't require authentication
// (e.g., listing available plans for the pricing page)
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/subscriptions/plans", h.GetPlans)
}

// RegisterManagerRoutes registers routes that require role=manager.
func RegisterManagerRoutes(r *gin.RouterGroup, h *Handler) {
	sub := r.Group("/manager/subscription")
	{
		sub.GET("", h.GetCurrent)
		sub.POST("/upgrade", h.Upgrade)
		sub.POST("/pay", h.ProcessPayment)
		sub.GET("/bills", h.ListBills)
		sub.GET("/payment-methods", h.PaymentMethods)
	}
}
