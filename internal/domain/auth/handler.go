package auth

import (
	"errors"
	"net/http"

	"estatelink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a manager or tenant account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Account details"
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", err.Error())
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "registration failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
		case errors.Is(err, ErrAccountLocked):
			response.Error(c, http.StatusForbidden, "ACCOUNT_LOCKED", err.Error())
		case errors.Is(err, ErrAccountSuspended):
			response.Error(c, http.StatusForbidden, "ACCOUNT_SUSPENDED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Router /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "refresh token is invalid or expired")
		return
	}

	response.Success(c, http.StatusOK, tokens)
}

// Logout godoc
// @Summary Revoke the current access token and all refresh tokens
// @Tags Auth
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetInt64("user_id")
	jti := c.GetString("token_jti")

	if err := h.service.Logout(c.Request.Context(), userID, jti); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "logout failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// RequestVerification godoc
// @Summary Send (or resend) the email verification code
// @Tags Auth
// @Router /auth/verify/request [post]
func (h *Handler) RequestVerification(c *gin.Context) {
	var req ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.RequestEmailVerification(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to send verification code")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "verification code sent if the address exists"})
}

// VerifyEmail godoc
// @Summary Confirm the email verification code
// @Tags Auth
// @Router /auth/verify/confirm [post]
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.VerifyEmail(c.Request.Context(), &req); err != nil {
		if errors.Is(err, ErrCodeMismatch) {
			response.Error(c, http.StatusBadRequest, "CODE_MISMATCH", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "verification failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "email verified"})
}

// RequestPasswordReset godoc
// @Summary Send a password reset link
// @Tags Auth
// @Router /auth/password/reset-request [post]
func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to send reset link")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "reset link sent if the address exists"})
}

// ConfirmPasswordReset godoc
// @Summary Set a new password with a reset token
// @Tags Auth
// @Router /auth/password/reset-confirm [post]
func (h *Handler) ConfirmPasswordReset(c *gin.Context) {
	var req ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.ConfirmPasswordReset(c.Request.Context(), &req); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.Error(c, http.StatusBadRequest, "INVALID_TOKEN", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "password reset failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "password updated"})
}
