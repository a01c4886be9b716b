package db

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
)

func strPtr(s string) *string { return &s }

func TestDocumentVersions(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	u := mustUser(t, c)

	id := uuid.NewString()
	v1, err := c.SaveDocument(ctx, models.Document{ID: id, Title: "Draft", Content: strPtr("one"), Kind: models.KindCode, UserID: u.ID})
	require.NoError(t, err)
	v2, err := c.SaveDocument(ctx, models.Document{ID: id, Title: "Draft", Content: strPtr("two"), Kind: models.KindCode, UserID: u.ID})
	require.NoError(t, err)
	require.True(t, v2.CreatedAt.After(v1.CreatedAt))

	versions, err := c.GetDocumentsByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "one", *versions[0].Content)
	assert.Equal(t, "two", *versions[1].Content)
	assert.Equal(t, models.KindCode, versions[1].Kind)

	latest, err := c.GetDocumentByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, v2.CreatedAt.Equal(latest.CreatedAt))

	missing, err := c.GetDocumentByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = c.SaveDocument(ctx, models.Document{ID: id, Title: "x", Kind: "video", UserID: u.ID})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestDatabase))
}

func TestDeleteDocumentsByIDAfterTimestamp(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	u := mustUser(t, c)

	id := uuid.NewString()
	var versions []*models.Document
	for i := 0; i < 3; i++ {
		v, err := c.SaveDocument(ctx, models.Document{ID: id, Title: "Essay", Content: strPtr(strings.Repeat("x", i+1)), UserID: u.ID})
		require.NoError(t, err)
		versions = append(versions, v)
	}

	require.NoError(t, c.SaveSuggestions(ctx, []models.Suggestion{
		{DocumentID: id, DocumentCreatedAt: versions[0].CreatedAt, OriginalText: "x", SuggestedText: "y", UserID: u.ID},
		{DocumentID: id, DocumentCreatedAt: versions[2].CreatedAt, OriginalText: "xxx", SuggestedText: "z",
			Description: strPtr("shorter"), UserID: u.ID},
	}))

	deleted, err := c.DeleteDocumentsByIDAfterTimestamp(ctx, id, versions[0].CreatedAt)
	require.NoError(t, err)
	assert.Len(t, deleted, 2)

	left, err := c.GetDocumentsByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.True(t, versions[0].CreatedAt.Equal(left[0].CreatedAt))

	suggestions, err := c.GetSuggestionsByDocumentID(ctx, id)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "y", suggestions[0].SuggestedText)
	assert.Nil(t, suggestions[0].Description)
	assert.False(t, suggestions[0].IsResolved)
}

func TestDeleteDocumentsAfterLatestIsNoop(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	u := mustUser(t, c)

	doc, err := c.SaveDocument(ctx, models.Document{Title: "Only", UserID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, models.KindText, doc.Kind)

	deleted, err := c.DeleteDocumentsByIDAfterTimestamp(ctx, doc.ID, doc.CreatedAt.Add(time.Second))
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

func TestCreateUserAndGetUser(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateUser(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)

	users, err := c.GetUser(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, created.ID, users[0].ID)
	require.NotNil(t, users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*users[0].PasswordHash), []byte("correct horse")))

	none, err := c.GetUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateGuestUser(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	g1, err := c.CreateGuestUser(ctx)
	require.NoError(t, err)
	g2, err := c.CreateGuestUser(ctx)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(g1.Email, "guest-"))
	assert.NotEqual(t, g1.Email, g2.Email)
	assert.NotEqual(t, g1.ID, g2.ID)
	require.NotNil(t, g1.PasswordHash)
	_, err = bcrypt.Cost([]byte(*g1.PasswordHash))
	assert.NoError(t, err)

	users, err := c.GetUser(ctx, g2.Email)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestCreateGuestUserSameMillisecond(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return frozen }

	g1, err := c.CreateGuestUser(ctx)
	require.NoError(t, err)
	g2, err := c.CreateGuestUser(ctx)
	require.NoError(t, err)

	prefix := fmt.Sprintf("guest-%d-", frozen.UnixMilli())
	assert.True(t, strings.HasPrefix(g1.Email, prefix), g1.Email)
	assert.True(t, strings.HasPrefix(g2.Email, prefix), g2.Email)
	assert.NotEqual(t, g1.Email, g2.Email)
}
