package handlers

import (
	"errors"
	"net/http"

	"chime/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Failure reasons surfaced on the create endpoint.
const (
	ReasonUnknownParticipant = "UNKNOWN_PARTICIPANT"
	ReasonPersistenceFailure = "PERSISTENCE_FAILURE"
)

// NotificationHandler exposes the notification pipeline over HTTP.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// createNotificationRequest is the body for POST /api/notifications. The
// sender is never taken from the body; it is the authenticated session user.
type createNotificationRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// CreateNotificationHandler handles POST /api/notifications.
func (h *NotificationHandler) CreateNotificationHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create notification request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	notif, err := h.Svc.Create(c.Request.Context(), userID.(string), req.RecipientID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrUnknownParticipant):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Make sure both users exist",
				"reason": ReasonUnknownParticipant,
			})
		case errors.Is(err, notification.ErrPersistence):
			logger.Error("Failed to record notification", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":  "Failed to record notification",
				"reason": ReasonPersistenceFailure,
			})
		default:
			logger.Error("Failed to create notification", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"notification": notif})
}

// ListNotificationsHandler handles GET /api/notifications. It returns the
// authenticated user's history regardless of connection state.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	views, err := h.Svc.History(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Error("Failed to list notifications", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":  "Failed to retrieve notifications",
			"reason": ReasonPersistenceFailure,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": views})
}
