package handlers

import (
	"io"
	"net/http"

	"chime/services/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StreamHandler attaches a client to the live push stream over SSE.
type StreamHandler struct {
	Hub        *realtime.Hub
	BufferSize int
}

func NewStreamHandler(hub *realtime.Hub, bufferSize int) *StreamHandler {
	return &StreamHandler{Hub: hub, BufferSize: bufferSize}
}

// StreamNotificationsHandler handles GET /api/notifications/stream. Each
// request is one channel: registered on connect, unregistered when the client
// goes away. Multiple simultaneous streams per user are fine; each gets its
// own copy of every event.
func (h *StreamHandler) StreamNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ch := realtime.NewChannel(h.BufferSize)
	h.Hub.Register(userID.(string), ch)
	defer h.Hub.Unregister(userID.(string), ch)

	logger.Debug("Client attached to notification stream", zap.String("userID", userID.(string)))

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event := <-ch.Events():
			c.SSEvent(event.Name, event.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
