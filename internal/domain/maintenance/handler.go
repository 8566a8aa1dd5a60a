package maintenance

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
// @Summary List maintenance requests visible to the caller
// @Tags Portal Maintenance
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Router /portal/maintenance [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), middleware.PortalProperty(c),
		c.GetInt64("user_id"), c.GetString("role"), c.Query("status"))
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// File godoc
// @Summary File a maintenance request (tenant with active lease)
// @Tags Portal Maintenance
// @Security BearerAuth
// @Param body body CreateRequest true "Request details"
// @Router /portal/maintenance [post]
func (h *Handler) File(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	mr, err := h.service.File(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"), &req)
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, mr)
}

// UpdateStatus godoc
// @Summary Move a maintenance request through its lifecycle
// @Tags Portal Maintenance
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Router /portal/maintenance/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid request id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	mr, err := h.service.UpdateStatus(c.Request.Context(), middleware.PortalProperty(c),
		c.GetInt64("user_id"), c.GetString("role"), id, req.Status)
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mr)
}

func writeMaintenanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotAllowed):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrRequestNotFound), errors.Is(err, ErrNoActiveLease):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInvalidPriority):
		response.Error(c, http.StatusBadRequest, "INVALID_STATE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
