package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public auth endpoints on r and the
// session endpoints on authenticated (a group wrapped with JWT middleware).
func RegisterRoutes(r *gin.RouterGroup, authenticated *gin.RouterGroup, h *Handler) {
	public := r.Group("/auth")
	{
		public.POST("/register", h.Register)
		public.POST("/login", h.Login)
		public.POST("/refresh", h.Refresh)
		public.POST("/verify/request", h.RequestVerification)
		public.POST("/verify/confirm", h.VerifyEmail)
		public.POST("/password/reset-request", h.RequestPasswordReset)
		public.POST("/password/reset-confirm", h.ConfirmPasswordReset)
	}

	session := authenticated.Group("/auth")
	{
		session.POST("/logout", h.Logout)
	}
}
