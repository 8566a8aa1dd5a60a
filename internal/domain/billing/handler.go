package billing

import (
	"errors"
	"net/http"

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
// @Summary List rent bills visible to the caller
// @Tags Portal Billing
// @Security BearerAuth
// @Router /portal/bills [get]
func (h *Handler) List(c *gin.Context) {
	bills, err := h.service.List(c.Request.Context(), middleware.PortalProperty(c),
		c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		writeBillingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bills)
}

// Generate godoc
// @Summary Raise the next monthly rent bill for a lease
// @Tags Portal Billing
// @Security BearerAuth
// @Param body body GenerateRequest true "Lease to bill"
// @Router /portal/bills [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	bill, err := h.service.Generate(c.Request.Context(), middleware.PortalProperty(c),
		c.GetInt64("user_id"), c.GetString("role"), req.TenancyID)
	if err != nil {
		writeBillingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, bill)
}

// Pay godoc
// @Summary Pay a rent bill with a card
// @Tags Portal Billing
// @Security BearerAuth
// @Param body body PayRequest true "Bill and card details"
// @Router /portal/bills/pay [post]
func (h *Handler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.service.Pay(c.Request.Context(), middleware.PortalProperty(c), c.GetInt64("user_id"), &req)
	if err != nil {
		writeBillingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// MarkOverdue godoc
// @Summary Flip pending bills past their due date to overdue
// @Tags Portal Billing
// @Security BearerAuth
// @Router /portal/bills/mark-overdue [post]
func (h *Handler) MarkOverdue(c *gin.Context) {
	count, err := h.service.MarkOverdue(c.Request.Context(), middleware.PortalProperty(c),
		c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		writeBillingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"marked_overdue": count})
}

func writeBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotAllowed), errors.Is(err, ErrNotYourBill):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrBillNotFound), errors.Is(err, ErrTenancyNotFound), errors.Is(err, ErrNoActiveLease):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrBillAlreadyPaid):
		response.Error(c, http.StatusConflict, "ALREADY_PAID", err.Error())
	case errors.Is(err, ErrTenancyEnded):
		response.Error(c, http.StatusBadRequest, "LEASE_ENDED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
