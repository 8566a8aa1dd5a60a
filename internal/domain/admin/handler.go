package admin

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

// PendingProperties godoc
// @Summary List properties awaiting approval
// @Tags Admin
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Router /admin/properties/pending [get]
func (h *Handler) PendingProperties(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.ListPendingProperties(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list pending properties")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ApproveProperty godoc
// @Summary Approve a pending property and assign its portal subdomain
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param body body ApproveRequest false "Optional custom subdomain"
// @Router /admin/properties/{id}/approve [put]
func (h *Handler) ApproveProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid property id")
		return
	}

	var req ApproveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
	}

	p, err := h.service.ApproveProperty(c.Request.Context(), id, req.Subdomain)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// RejectProperty godoc
// @Summary Reject a pending property with a reason
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param body body RejectRequest true "Rejection reason"
// @Router /admin/properties/{id}/reject [put]
func (h *Handler) RejectProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid property id")
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p, err := h.service.RejectProperty(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// PendingSubscriptions godoc
// @Summary List subscriptions awaiting activation
// @Tags Admin
// @Security BearerAuth
// @Router /admin/subscriptions/pending [get]
func (h *Handler) PendingSubscriptions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.ListPendingSubscriptions(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list pending subscriptions")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ActivateSubscription godoc
// @Summary Activate a pending subscription with a settled bill
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Subscription ID"
// @Router /admin/subscriptions/{id}/activate [put]
func (h *Handler) ActivateSubscription(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid subscription id")
		return
	}

	if err := h.service.ActivateSubscription(c.Request.Context(), id); err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "subscription activated"})
}

// GetStatistics godoc
// @Summary Platform statistics
// @Tags Admin
// @Security BearerAuth
// @Router /admin/statistics [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to collect statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPropertyNotFound), errors.Is(err, ErrSubscriptionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotPendingApproval),
		errors.Is(err, ErrReasonRequired),
		errors.Is(err, ErrInvalidSubdomain),
		errors.Is(err, ErrSubscriptionNotPending),
		errors.Is(err, ErrSubscriptionBillUnpaid):
		response.Error(c, http.StatusBadRequest, "INVALID_STATE", err.Error())
	case errors.Is(err, ErrSubdomainTaken):
		response.Error(c, http.StatusConflict, "SUBDOMAIN_TAKEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
