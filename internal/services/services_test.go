package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/core"
	"github.com/markdave123-py/chathistory/internal/core/mocks"
	"github.com/markdave123-py/chathistory/internal/logger"
	"github.com/markdave123-py/chathistory/internal/models"
)

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates a new user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		svc := NewUserService(db)

		db.EXPECT().GetUser(gomock.Any(), "ada@example.com").Return([]models.User{}, nil)
		db.EXPECT().CreateUser(gomock.Any(), "ada@example.com", "secret-pw").
			Return(&models.User{ID: "u1", Email: "ada@example.com"}, nil)

		u, err := svc.Register(context.Background(), " Ada@Example.com ", "secret-pw")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("rejects existing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		svc := NewUserService(db)

		db.EXPECT().GetUser(gomock.Any(), "ada@example.com").Return([]models.User{{ID: "u1"}}, nil)

		_, err := svc.Register(context.Background(), "ada@example.com", "secret-pw")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestAuth))
	})

	t.Run("rejects short password without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewUserService(mocks.NewMockDbClient(ctrl))

		_, err := svc.Register(context.Background(), "ada@example.com", "123")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestAuth))
	})
}

func TestUserService_Authenticate(t *testing.T) {
	hash := hashOf(t, "secret-pw")

	t.Run("valid password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetUser(gomock.Any(), "ada@example.com").
			Return([]models.User{{ID: "u1", Email: "ada@example.com", PasswordHash: hash}}, nil)

		u, err := NewUserService(db).Authenticate(context.Background(), "ada@example.com", "secret-pw")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetUser(gomock.Any(), "ada@example.com").
			Return([]models.User{{ID: "u1", PasswordHash: hash}}, nil)

		_, err := NewUserService(db).Authenticate(context.Background(), "ada@example.com", "nope-nope")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorizedAuth))
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetUser(gomock.Any(), "who@example.com").Return([]models.User{}, nil)

		_, err := NewUserService(db).Authenticate(context.Background(), "who@example.com", "secret-pw")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorizedAuth))
	})

	t.Run("store failure keeps its code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetUser(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.New(apperrors.CodeBadRequestDatabase, "Failed to get user by email"))

		_, err := NewUserService(db).Authenticate(context.Background(), "ada@example.com", "secret-pw")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestDatabase))
	})
}

func TestChatService_ChatDetail(t *testing.T) {
	owner := models.Session{UserID: "owner", Type: models.UserTypeRegular}
	stranger := models.Session{UserID: "stranger", Type: models.UserTypeGuest}

	t.Run("owner sees everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		svc := NewChatService(db, logger.Discard())

		chat := &models.Chat{ID: "c1", UserID: "owner", Visibility: models.VisibilityPrivate}
		db.EXPECT().GetChatByID(gomock.Any(), "c1").Return(chat, nil)
		db.EXPECT().GetMessagesByChatID(gomock.Any(), "c1").Return([]models.Message{{ID: "m1"}}, nil)
		db.EXPECT().GetVotesByChatID(gomock.Any(), "c1").Return([]models.Vote{{ChatID: "c1", MessageID: "m1", IsUpvoted: true}}, nil)
		db.EXPECT().GetStreamIDsByChatID(gomock.Any(), "c1").Return([]string{"s1"}, nil)

		detail, err := svc.ChatDetail(context.Background(), owner, "c1")
		require.NoError(t, err)
		assert.Equal(t, chat, detail.Chat)
		assert.Len(t, detail.Messages, 1)
		assert.Len(t, detail.Votes, 1)
		assert.Equal(t, []string{"s1"}, detail.StreamIDs)
	})

	t.Run("private chat is forbidden to others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetChatByID(gomock.Any(), "c1").
			Return(&models.Chat{ID: "c1", UserID: "owner", Visibility: models.VisibilityPrivate}, nil)

		_, err := NewChatService(db, logger.Discard()).ChatDetail(context.Background(), stranger, "c1")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeForbiddenChat))
	})

	t.Run("missing chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetChatByID(gomock.Any(), "c1").Return(nil, nil)

		_, err := NewChatService(db, logger.Discard()).ChatDetail(context.Background(), owner, "c1")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFoundChat))
	})

	t.Run("one failed read fails the detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetChatByID(gomock.Any(), "c1").
			Return(&models.Chat{ID: "c1", UserID: "owner", Visibility: models.VisibilityPublic}, nil)
		db.EXPECT().GetMessagesByChatID(gomock.Any(), "c1").Return([]models.Message{}, nil).AnyTimes()
		db.EXPECT().GetVotesByChatID(gomock.Any(), "c1").
			Return(nil, apperrors.New(apperrors.CodeBadRequestDatabase, "Failed to get votes by chat id"))
		db.EXPECT().GetStreamIDsByChatID(gomock.Any(), "c1").Return([]string{}, nil).AnyTimes()

		_, err := NewChatService(db, logger.Discard()).ChatDetail(context.Background(), stranger, "c1")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestDatabase))
	})
}

func TestChatService_Vote(t *testing.T) {
	session := models.Session{UserID: "owner", Type: models.UserTypeRegular}

	t.Run("votes on own chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetChatByID(gomock.Any(), "c1").Return(&models.Chat{ID: "c1", UserID: "owner"}, nil)
		db.EXPECT().VoteMessage(gomock.Any(), "c1", "m1", models.VoteDown).Return(nil)

		err := NewChatService(db, logger.Discard()).Vote(context.Background(), session, "c1", "m1", models.VoteDown)
		require.NoError(t, err)
	})

	t.Run("someone else's chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetChatByID(gomock.Any(), "c1").Return(&models.Chat{ID: "c1", UserID: "other"}, nil)

		err := NewChatService(db, logger.Discard()).Vote(context.Background(), session, "c1", "m1", models.VoteUp)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeForbiddenVote))
	})

	t.Run("bad vote type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		err := NewChatService(mocks.NewMockDbClient(ctrl), logger.Discard()).
			Vote(context.Background(), session, "c1", "m1", models.VoteType("meh"))
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestAPI))
	})
}

func TestChatService_Entitlements(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDbClient(ctrl)
	svc := NewChatService(db, logger.Discard())

	db.EXPECT().GetMessageCountByUserID(gomock.Any(), "g1", 24).Return(25, nil)
	ent, err := svc.Entitlements(context.Background(), models.Session{UserID: "g1", Type: models.UserTypeGuest})
	require.NoError(t, err)
	assert.Equal(t, 20, ent.MaxMessagesPerDay)
	assert.Equal(t, 0, ent.Remaining)

	db.EXPECT().GetMessageCountByUserID(gomock.Any(), "r1", 24).Return(40, nil)
	ent, err = svc.Entitlements(context.Background(), models.Session{UserID: "r1", Type: models.UserTypeRegular})
	require.NoError(t, err)
	assert.Equal(t, 60, ent.Remaining)
}

func TestDocumentService_Save(t *testing.T) {
	session := models.Session{UserID: "u1", Type: models.UserTypeRegular}

	t.Run("new version stamped with the session user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetDocumentsByID(gomock.Any(), "d1").Return([]models.Document{{ID: "d1", UserID: "u1"}}, nil)
		db.EXPECT().SaveDocument(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc models.Document) (*models.Document, error) {
				assert.Equal(t, "u1", doc.UserID)
				assert.Equal(t, models.KindText, doc.Kind)
				assert.True(t, doc.CreatedAt.IsZero())
				doc.CreatedAt = time.Now()
				return &doc, nil
			})

		saved, err := NewDocumentService(db).Save(context.Background(), session,
			models.Document{ID: "d1", Title: "Notes", UserID: "spoofed", CreatedAt: time.Unix(1, 0)})
		require.NoError(t, err)
		assert.Equal(t, "d1", saved.ID)
	})

	t.Run("id owned by another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockDbClient(ctrl)
		db.EXPECT().GetDocumentsByID(gomock.Any(), "d1").Return([]models.Document{{ID: "d1", UserID: "u2"}}, nil)

		_, err := NewDocumentService(db).Save(context.Background(), session, models.Document{ID: "d1", Title: "Notes"})
		assert.True(t, apperrors.HasCode(err, apperrors.CodeForbiddenDocument))
	})
}

func TestDocumentService_DeleteAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDbClient(ctrl)
	session := models.Session{UserID: "u1"}
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db.EXPECT().GetDocumentsByID(gomock.Any(), "d1").Return([]models.Document{{ID: "d1", UserID: "u1"}}, nil)
	db.EXPECT().DeleteDocumentsByIDAfterTimestamp(gomock.Any(), "d1", ts).
		Return([]models.Document{{ID: "d1", UserID: "u1", CreatedAt: ts.Add(time.Hour)}}, nil)

	deleted, err := NewDocumentService(db).DeleteAfter(context.Background(), session, "d1", ts)
	require.NoError(t, err)
	assert.Len(t, deleted, 1)
}

func TestFileService_Upload(t *testing.T) {
	t.Run("stores under the user's attachment prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockObjectClient(ctrl)
		svc := NewFileService(storage)

		storage.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").
			DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
				assert.Regexp(t, `^users/u1/attachments/[0-9a-f-]{36}/my_cat.png$`, key)
				return "https://files.test/" + key, nil
			})

		att, err := svc.Upload(context.Background(), "u1", "my cat.png", "image/png", 1024, bytes.NewReader([]byte("png")))
		require.NoError(t, err)
		assert.Equal(t, "image/png", att.ContentType)
		assert.Contains(t, att.URL, att.Pathname)
	})

	t.Run("rejects large and unsupported files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFileService(mocks.NewMockObjectClient(ctrl))

		_, err := svc.Upload(context.Background(), "u1", "a.png", "image/png", MaxUploadSize+1, bytes.NewReader(nil))
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestFiles))
		_, err = svc.Upload(context.Background(), "u1", "a.gif", "image/gif", 10, bytes.NewReader(nil))
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestFiles))
	})

	t.Run("storage failure and missing storage are offline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockObjectClient(ctrl)
		storage.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("connection refused"))

		_, err := NewFileService(storage).Upload(context.Background(), "u1", "a.png", "image/png", 10, bytes.NewReader(nil))
		assert.True(t, apperrors.HasCode(err, apperrors.CodeOfflineFiles))

		_, err = NewFileService(nil).Upload(context.Background(), "u1", "a.png", "image/png", 10, bytes.NewReader(nil))
		assert.True(t, apperrors.HasCode(err, apperrors.CodeOfflineFiles))
	})
}

func TestObjectKeyStripsDirectories(t *testing.T) {
	svc := NewFileService(nil)
	id := uuid.NewString()
	assert.Equal(t, "users/u1/attachments/"+id+"/passwd", svc.objectKey("u1", id, "../../etc/passwd"))
	assert.Equal(t, "users/u1/attachments/"+id+"/upload", svc.objectKey("u1", id, "  "))
}

func TestFileService_Open(t *testing.T) {
	const key = "users/u1/attachments/a1/cat.png"

	t.Run("streams own attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockObjectClient(ctrl)
		storage.EXPECT().GetObjectReader(gomock.Any(), key).Return(io.NopCloser(bytes.NewReader([]byte("png"))), nil)

		body, err := NewFileService(storage).Open(context.Background(), "u1", key)
		require.NoError(t, err)
		defer body.Close()
		data, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
	})

	t.Run("other user's prefix and traversal never reach storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFileService(mocks.NewMockObjectClient(ctrl))

		_, err := svc.Open(context.Background(), "u2", key)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeForbiddenFiles))
		_, err = svc.Open(context.Background(), "u1", "users/u1/attachments/../../u2/attachments/a1/cat.png")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeBadRequestFiles))
		_, err = svc.Open(context.Background(), "u1", "users/u1/profile.png")
		assert.True(t, apperrors.HasCode(err, apperrors.CodeForbiddenFiles))
	})

	t.Run("missing object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockObjectClient(ctrl)
		storage.EXPECT().GetObjectReader(gomock.Any(), key).
			Return(nil, fmt.Errorf("s3 get %s: %w", key, core.ErrObjectNotFound))

		_, err := NewFileService(storage).Open(context.Background(), "u1", key)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFoundFiles))
	})
}

func TestFileService_Delete(t *testing.T) {
	const key = "users/u1/attachments/a1/cat.png"

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockObjectClient(ctrl)
	storage.EXPECT().DeleteFile(gomock.Any(), key).Return(nil)
	svc := NewFileService(storage)

	require.NoError(t, svc.Delete(context.Background(), "u1", key))
	assert.True(t, apperrors.HasCode(svc.Delete(context.Background(), "u2", key), apperrors.CodeForbiddenFiles))

	storage.EXPECT().DeleteFile(gomock.Any(), key).Return(errors.New("timeout"))
	assert.True(t, apperrors.HasCode(svc.Delete(context.Background(), "u1", key), apperrors.CodeOfflineFiles))

	assert.True(t, apperrors.HasCode(NewFileService(nil).Delete(context.Background(), "u1", key), apperrors.CodeOfflineFiles))
}
