package apperrors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesCode(t *testing.T) {
	err := New(CodeNotFoundDatabase, "Chat with id x not found")

	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, SurfaceDatabase, err.Surface)
	assert.Equal(t, CodeNotFoundDatabase, err.Code())
	assert.Equal(t, "not_found:database: Chat with id x not found", err.Error())
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeBadRequestAPI, http.StatusBadRequest},
		{CodeUnauthorizedChat, http.StatusUnauthorized},
		{CodeForbiddenChat, http.StatusForbidden},
		{CodeNotFoundChat, http.StatusNotFound},
		{CodeRateLimitChat, http.StatusTooManyRequests},
		{CodeOfflineFiles, http.StatusServiceUnavailable},
		{CodeNotFoundDatabase, http.StatusNotFound},
		{CodeBadRequestDatabase, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			assert.Equal(t, tc.status, New(tc.code, "").StatusCode())
		})
	}
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "An error occurred while executing a database query.", New(CodeBadRequestDatabase, "").Message)
	assert.Contains(t, New(CodeUnauthorizedChat, "").Message, "sign in")
	assert.True(t, New(CodeBadRequestDatabase, "").Logged())
	assert.False(t, New(CodeBadRequestAPI, "").Logged())
}

func TestAsThroughWrappedChain(t *testing.T) {
	base := Forbidden(SurfaceChat, "")
	wrapped := errors.Wrap(base, "services.ChatService.DeleteChat")

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeForbiddenChat, got.Code())
	assert.True(t, HasCode(wrapped, CodeForbiddenChat))
	assert.False(t, HasCode(errors.New("plain"), CodeForbiddenChat))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(CodeOfflineFiles, "", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}
