package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chime/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSessionStore maps session IDs to session blobs for guard tests.
type fakeSessionStore struct {
	sessions map[string]*models.WebSession
	err      error
}

func (f *fakeSessionStore) Get(_ context.Context, sessionID string) (*models.WebSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[sessionID], nil
}

func newGuardedRouter(store *fakeSessionStore) *gin.Engine {
	router := gin.New()
	router.GET("/guarded", SessionAuthMiddleware(store), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return router
}

func get(router *gin.Engine, sessionID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAuthMiddleware(t *testing.T) {
	store := &fakeSessionStore{sessions: map[string]*models.WebSession{
		"sess-complete": {UserID: "alice", Status: models.SessionStatusComplete},
		"sess-pending":  {UserID: "alice", Status: "pending"},
		"sess-empty":    {Status: models.SessionStatusComplete},
	}}

	tests := []struct {
		name      string
		sessionID string
		wantCode  int
	}{
		{"verified session passes", "sess-complete", http.StatusOK},
		{"missing cookie", "", http.StatusUnauthorized},
		{"unknown session", "sess-ghost", http.StatusUnauthorized},
		{"incomplete session", "sess-pending", http.StatusUnauthorized},
		{"session without user", "sess-empty", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newGuardedRouter(store), tt.sessionID)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"userID":"alice"`)
			}
		})
	}
}

func TestSessionAuthMiddlewareStoreError(t *testing.T) {
	store := &fakeSessionStore{err: errors.New("connection refused")}
	w := get(newGuardedRouter(store), "sess-complete")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
