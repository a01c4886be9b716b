package core

//go:generate mockgen -source=infra_interface.go -destination=mocks/mock_infra.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/markdave123-py/chathistory/internal/models"
)

// DbClient defines all persistence operations the services and handlers need.
// It abstracts Postgres so higher layers never depend on a specific DB.
// Failures are returned as *apperrors.Error.
type DbClient interface {
	GetUser(ctx context.Context, email string) ([]models.User, error)
	CreateUser(ctx context.Context, email, password string) (*models.User, error)
	CreateGuestUser(ctx context.Context) (*models.User, error)

	SaveChat(ctx context.Context, id, userID, title string, visibility models.Visibility) error
	DeleteChatByID(ctx context.Context, id string) (*models.Chat, error)
	DeleteAllChatsByUserID(ctx context.Context, userID string) (*models.DeleteResult, error)
	GetChats(ctx context.Context, q models.ChatPageQuery) (*models.ChatPage, error)
	GetChatsByUserID(ctx context.Context, userID string, q models.ChatPageQuery) (*models.ChatPage, error)
	GetChatByID(ctx context.Context, id string) (*models.Chat, error)
	UpdateChatVisibilityByID(ctx context.Context, chatID string, visibility models.Visibility) error
	UpdateChatLastContextByID(ctx context.Context, chatID string, lastContext json.RawMessage)

	SaveMessages(ctx context.Context, messages []models.Message) error
	GetMessagesByChatID(ctx context.Context, chatID string) ([]models.Message, error)
	GetMessageByID(ctx context.Context, id string) (*models.Message, error)
	DeleteMessagesByChatIDAfterTimestamp(ctx context.Context, chatID string, ts time.Time) (int64, error)
	GetMessageCountByUserID(ctx context.Context, userID string, differenceInHours int) (int, error)

	VoteMessage(ctx context.Context, chatID, messageID string, voteType models.VoteType) error
	GetVotesByChatID(ctx context.Context, chatID string) ([]models.Vote, error)

	SaveDocument(ctx context.Context, doc models.Document) (*models.Document, error)
	GetDocumentsByID(ctx context.Context, id string) ([]models.Document, error)
	GetDocumentByID(ctx context.Context, id string) (*models.Document, error)
	DeleteDocumentsByIDAfterTimestamp(ctx context.Context, id string, ts time.Time) ([]models.Document, error)

	SaveSuggestions(ctx context.Context, suggestions []models.Suggestion) error
	GetSuggestionsByDocumentID(ctx context.Context, documentID string) ([]models.Suggestion, error)

	CreateStreamID(ctx context.Context, streamID, chatID string) error
	GetStreamIDsByChatID(ctx context.Context, chatID string) ([]string, error)

	Health(ctx context.Context) error
	Close() error
}

// ErrObjectNotFound is returned by ObjectClient when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectClient defines interactions with S3 or any object storage.
type ObjectClient interface {
	UploadFile(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)
	DeleteFile(ctx context.Context, key string) error
	GetObjectReader(ctx context.Context, key string) (io.ReadCloser, error)
}
