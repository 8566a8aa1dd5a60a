package staff

import (
	"errors"
	"net/http"
	"strconv"

	"estatelink/internal/middleware"
	"estatelink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List staff assigned to the portal property
// @Tags Portal Staff
// @Security BearerAuth
// @Router /portal/staff [get]
func (h *Handler) List(c *gin.Context) {
	property := middleware.PortalProperty(c)

	members, err := h.service.List(c.Request.Context(), property)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list staff")
		return
	}
	response.Success(c, http.StatusOK, members)
}

// Add godoc
// @Summary Assign a staff user to the portal property
// @Tags Portal Staff
// @Security BearerAuth
// @Param body body AddRequest true "Staff user email and position"
// @Router /portal/staff [post]
func (h *Handler) Add(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	member, err := h.service.Add(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"), &req)
	if err != nil {
		writeStaffError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

// Remove godoc
// @Summary Remove a staff member from the portal property
// @Tags Portal Staff
// @Security BearerAuth
// @Param id path int true "Staff member ID"
// @Router /portal/staff/{id} [delete]
func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid staff member id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"), id); err != nil {
		writeStaffError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "staff member removed"})
}

func writeStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotManager):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrFeatureNotInPlan):
		response.Error(c, http.StatusForbidden, "FEATURE_NOT_IN_PLAN", err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrStaffNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotStaffRole):
		response.Error(c, http.StatusBadRequest, "NOT_STAFF_ROLE", err.Error())
	case errors.Is(err, ErrAlreadyStaff):
		response.Error(c, http.StatusConflict, "ALREADY_STAFF", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
