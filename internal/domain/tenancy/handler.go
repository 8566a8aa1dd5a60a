package tenancy

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
// @Summary List leases on the portal property
// @Tags Portal Leases
// @Security BearerAuth
// @Router /portal/leases [get]
func (h *Handler) List(c *gin.Context) {
	leases, err := h.service.List(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		writeTenancyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, leases)
}

// Create godoc
// @Summary Start a lease binding a tenant to a unit
// @Tags Portal Leases
// @Security BearerAuth
// @Param body body CreateRequest true "Lease details"
// @Router /portal/leases [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	lease, err := h.service.Create(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"), c.GetString("role"), &req)
	if err != nil {
		writeTenancyError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lease)
}

// End godoc
// @Summary End an active lease
// @Tags Portal Leases
// @Security BearerAuth
// @Param id path int true "Lease ID"
// @Router /portal/leases/{id}/end [put]
func (h *Handler) End(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid lease id")
		return
	}

	lease, err := h.service.End(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"), c.GetString("role"), id)
	if err != nil {
		writeTenancyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lease)
}

// MyLease godoc
// @Summary Get the tenant's active lease on the portal property
// @Tags Portal Leases
// @Security BearerAuth
// @Router /portal/leases/mine [get]
func (h *Handler) MyLease(c *gin.Context) {
	lease, err := h.service.MyLease(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"))
	if err != nil {
		writeTenancyError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lease)
}

func writeTenancyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotAllowed):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrUnitNotFound),
		errors.Is(err, ErrTenancyNotFound), errors.Is(err, ErrNoActiveLease):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotTenantRole):
		response.Error(c, http.StatusBadRequest, "NOT_TENANT_ROLE", err.Error())
	case errors.Is(err, ErrUnitOccupied):
		response.Error(c, http.StatusConflict, "UNIT_OCCUPIED", err.Error())
	case errors.Is(err, ErrTenancyEnded):
		response.Error(c, http.StatusBadRequest, "LEASE_ENDED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
