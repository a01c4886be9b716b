package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	middleware "github.com/markdave123-py/chathistory/internal/api/middlewares"
	"github.com/markdave123-py/chathistory/internal/config"
	"github.com/markdave123-py/chathistory/internal/core/mocks"
	"github.com/markdave123-py/chathistory/internal/logger"
	"github.com/markdave123-py/chathistory/internal/models"
	"github.com/markdave123-py/chathistory/internal/services"
)

func testRouter(t *testing.T) (http.Handler, *mocks.MockDbClient, *middleware.JWTAuth) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDbClient(ctrl)
	log := logger.Discard()
	auth := middleware.NewJWTAuth("router-secret", time.Hour, log)
	cfg := &config.Config{CorsOrigins: []string{"http://localhost:3000"}, Port: "0"}

	deps := Deps{
		DB:        db,
		Users:     services.NewUserService(db),
		Chats:     services.NewChatService(db, log),
		Documents: services.NewDocumentService(db),
		Files:     services.NewFileService(nil),
		Auth:      auth,
	}
	return NewRouter(cfg, deps, log), db, auth
}

func TestRouterProtectsHistory(t *testing.T) {
	r, _, _ := testRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/history"},
		{http.MethodDelete, "/api/history"},
		{http.MethodGet, "/api/chat/c1"},
		{http.MethodPatch, "/api/vote"},
		{http.MethodPost, "/api/files/upload"},
		{http.MethodGet, "/api/files/users/u1/attachments/a1/cat.png"},
		{http.MethodDelete, "/api/files/users/u1/attachments/a1/cat.png"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestRouterServesHistoryWithToken(t *testing.T) {
	r, db, auth := testRouter(t)
	token, err := auth.IssueToken(models.Session{UserID: "u1", Type: models.UserTypeGuest})
	require.NoError(t, err)

	db.EXPECT().GetChatsByUserID(gomock.Any(), "u1", models.ChatPageQuery{Limit: 10}).
		Return(&models.ChatPage{Chats: []models.Chat{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"chats":[],"hasMore":false}`, rec.Body.String())
}

func TestRouterHealthIsPublic(t *testing.T) {
	r, db, _ := testRouter(t)
	db.EXPECT().Health(gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadRequiresMultipartBody(t *testing.T) {
	r, _, auth := testRouter(t)
	token, err := auth.IssueToken(models.Session{UserID: "u1", Type: models.UserTypeRegular})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadWithoutStorageIsOffline(t *testing.T) {
	r, _, auth := testRouter(t)
	token, err := auth.IssueToken(models.Session{UserID: "u1", Type: models.UserTypeRegular})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/files/users/u1/attachments/a1/cat.png", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"offline:files"`)
}
