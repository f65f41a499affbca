package handlers

import (
	"chime/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers and shared collaborators the route
// layer wires up.
type HandlerBundle struct {
	Sessions utils.SessionStore

	// Notification endpoints.
	CreateNotificationHandler gin.HandlerFunc
	ListNotificationsHandler  gin.HandlerFunc

	// Live stream endpoint.
	StreamNotificationsHandler gin.HandlerFunc
}
