package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chime/models"
	"chime/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubNotificationService scripts the service boundary for handler tests.
type stubNotificationService struct {
	createErr    error
	historyErr   error
	created      *models.Notification
	lastSenderID string
	views        []models.NotificationView
}

func (s *stubNotificationService) Create(_ context.Context, senderID, recipientID, content string) (*models.Notification, error) {
	s.lastSenderID = senderID
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &models.Notification{
		ID:          "n-1",
		SenderID:    senderID,
		RecipientID: recipientID,
		SenderName:  "Alice",
		Content:     content,
		Timestamp:   time.Now().UTC(),
	}
	return s.created, nil
}

func (s *stubNotificationService) History(_ context.Context, _ string) ([]models.NotificationView, error) {
	if s.historyErr != nil {
		return nil, s.historyErr
	}
	return s.views, nil
}

// newTestRouter wires the handler behind a middleware that plants the
// authenticated user, standing in for the session guard.
func newTestRouter(svc notification.NotificationService, userID string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})

	h := NewNotificationHandler(svc)
	router.POST("/api/notifications", h.CreateNotificationHandler)
	router.GET("/api/notifications", h.ListNotificationsHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateNotificationHandlerSuccess(t *testing.T) {
	svc := &stubNotificationService{}
	router := newTestRouter(svc, "alice")

	w := postJSON(t, router, "/api/notifications", gin.H{"recipientId": "bob", "content": "hello"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Notification models.Notification `json:"notification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Notification.SenderID)
	assert.Equal(t, "bob", resp.Notification.RecipientID)
	assert.Equal(t, "hello", resp.Notification.Content)

	// The sender comes from the session, never from the body.
	assert.Equal(t, "alice", svc.lastSenderID)
}

func TestCreateNotificationHandlerSenderFromSessionOnly(t *testing.T) {
	svc := &stubNotificationService{}
	router := newTestRouter(svc, "alice")

	w := postJSON(t, router, "/api/notifications", gin.H{
		"senderId":    "mallory",
		"recipientId": "bob",
		"content":     "hello",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice", svc.lastSenderID)
}

func TestCreateNotificationHandlerUnknownParticipant(t *testing.T) {
	svc := &stubNotificationService{createErr: notification.ErrUnknownParticipant}
	router := newTestRouter(svc, "alice")

	w := postJSON(t, router, "/api/notifications", gin.H{"recipientId": "ghost", "content": "hello"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ReasonUnknownParticipant, resp["reason"])
}

func TestCreateNotificationHandlerPersistenceFailure(t *testing.T) {
	svc := &stubNotificationService{createErr: notification.ErrPersistence}
	router := newTestRouter(svc, "alice")

	w := postJSON(t, router, "/api/notifications", gin.H{"recipientId": "bob", "content": "hello"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ReasonPersistenceFailure, resp["reason"])
}

func TestCreateNotificationHandlerRejectsBadBody(t *testing.T) {
	svc := &stubNotificationService{}
	router := newTestRouter(svc, "alice")

	w := postJSON(t, router, "/api/notifications", gin.H{"content": "hello"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateNotificationHandlerRequiresIdentity(t *testing.T) {
	svc := &stubNotificationService{}
	router := newTestRouter(svc, "")

	w := postJSON(t, router, "/api/notifications", gin.H{"recipientId": "bob", "content": "hello"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListNotificationsHandler(t *testing.T) {
	svc := &stubNotificationService{views: []models.NotificationView{
		{
			Notification: models.Notification{
				ID: "n-1", SenderID: "alice", RecipientID: "bob",
				SenderName: "Alice", Content: "hello",
			},
			SenderAvatarURL: "https://cdn.example/alice.png",
		},
	}}
	router := newTestRouter(svc, "bob")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Notifications []models.NotificationView `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "Alice", resp.Notifications[0].SenderName)
	assert.Equal(t, "https://cdn.example/alice.png", resp.Notifications[0].SenderAvatarURL)
}

func TestListNotificationsHandlerStoreDown(t *testing.T) {
	svc := &stubNotificationService{historyErr: notification.ErrPersistence}
	router := newTestRouter(svc, "bob")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
