package subscription

import (
	"errors"
	"net/http"

	"estatelink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for subscription management. All protected
// routes require role=manager.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetPlans godoc
// @Summary List all subscription plans
// @Description Returns all available plans. Public endpoint — no auth required.
// @Tags Subscriptions
// @Produce json
// @Router /subscriptions/plans [get]
func (h *Handler) GetPlans(c *gin.Context) {
	plans, err := h.service.GetPlans(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load plans")
		return
	}
	response.Success(c, http.StatusOK, plans)
}

// GetCurrent godoc
// @Summary Current subscription for the authenticated manager
// @Tags Subscriptions
// @Security BearerAuth
// @Produce json
// @Router /manager/subscription [get]
func (h *Handler) GetCurrent(c *gin.Context) {
	userID := c.GetInt64("user_id")

	cur, err := h.service.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load subscription")
		return
	}
	response.Success(c, http.StatusOK, cur)
}

// Upgrade godoc
// @Summary Upgrade or switch to a plan (by id or slug)
// @Tags Subscriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body UpgradeRequest true "Target plan"
// @Router /manager/subscription/upgrade [post]
func (h *Handler) Upgrade(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.service.Upgrade(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			response.Error(c, http.StatusNotFound, "PLAN_NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to process upgrade")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ProcessPayment godoc
// @Summary Pay a pending subscription bill (simulated gateway)
// @Tags Subscriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body PaymentRequest true "Bill and card details"
// @Router /manager/subscription/pay [post]
func (h *Handler) ProcessPayment(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.service.ProcessPayment(c.Request.Context(), userID, &req)
	if err != nil {
		var missing *MissingFieldError
		switch {
		case errors.As(err, &missing):
			response.Error(c, http.StatusBadRequest, "MISSING_FIELD", missing.Error())
		case errors.Is(err, ErrBillNotFound):
			response.Error(c, http.StatusNotFound, "BILL_NOT_FOUND", err.Error())
		case errors.Is(err, ErrBillAlreadyPaid):
			response.Error(c, http.StatusConflict, "BILL_ALREADY_PAID", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to process payment")
		}
		return
	}

	// Declined charges come back as a 200 with success=false in the payload.
	response.Success(c, http.StatusOK, result)
}

// ListBills godoc
// @Summary Billing history for the authenticated manager
// @Tags Subscriptions
// @Security BearerAuth
// @Router /manager/subscription/bills [get]
func (h *Handler) ListBills(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bills, err := h.service.ListBills(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load bills")
		return
	}
	response.Success(c, http.StatusOK, bills)
}

// PaymentMethods godoc
// @Summary Simulated saved payment methods
// @Tags Subscriptions
// @Security BearerAuth
// @Router /manager/subscription/payment-methods [get]
func (h *Handler) PaymentMethods(c *gin.Context) {
	userID := c.GetInt64("user_id")

	methods, err := h.service.PaymentMethods(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load payment methods")
		return
	}
	response.Success(c, http.StatusOK, methods)
}
