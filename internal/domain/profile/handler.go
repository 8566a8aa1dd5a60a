package profile

import (
	"errors"
	"net/http"
	"strconv"

	"estatelink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get godoc
// @Summary Get the current user's profile
// @Tags Profile
// @Security BearerAuth
// @Router /profile [get]
func (h *Handler) Get(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Update godoc
// @Summary Update the current user's profile
// @Tags Profile
// @Security BearerAuth
// @Router /profile [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), &req)
	if err != nil {
		writeProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags Profile
// @Security BearerAuth
// @Router /profile/password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), c.GetInt64("user_id"), &req); err != nil {
		writeProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "password changed"})
}

// ListUsers godoc
// @Summary List platform users (admin)
// @Tags Admin
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by status"
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	var params ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	result, err := h.service.ListUsers(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list users")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// SetUserStatus godoc
// @Summary Suspend or reactivate a user account (admin)
// @Tags Admin
// @Security BearerAuth
// @Router /admin/users/{id}/status [put]
func (h *Handler) SetUserStatus(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	user, err := h.service.SetStatus(c.Request.Context(), c.GetInt64("user_id"), userID, req.Status)
	if err != nil {
		writeProfileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func writeProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
	case errors.Is(err, ErrWrongPassword):
		response.Error(c, http.StatusBadRequest, "WRONG_PASSWORD", err.Error())
	case errors.Is(err, ErrCannotSuspendSelf):
		response.Error(c, http.StatusBadRequest, "CANNOT_SUSPEND_SELF", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
