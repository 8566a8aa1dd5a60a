package notification

import (
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

// List godoc
// @Summary List notifications for the authenticated user
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, unread, err := h.service.GetUserNotifications(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

// UnreadCount godoc
// @Summary Unread notification count
// @Tags Notifications
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	userID := c.GetInt64("user_id")
	count, err := h.service.CountUnread(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to count notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": count})
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags Notifications
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to mark notification read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "notification marked as read"})
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags Notifications
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if err := h.service.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to mark notifications read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

// Delete godoc
// @Summary Soft-delete a notification
// @Tags Notifications
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete notification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "notification deleted"})
}
