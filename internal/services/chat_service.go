package services

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/core"
	"github.com/markdave123-py/chathistory/internal/models"
)

// messages a user may send per 24 hours
var maxMessagesPerDay = map[models.UserType]int{
	models.UserTypeGuest:   20,
	models.UserTypeRegular: 100,
}

// ChatService applies session ownership rules on top of the access layer.
type ChatService struct {
	db  core.DbClient
	log *slog.Logger
}

func NewChatService(db core.DbClient, log *slog.Logger) *ChatService {
	return &ChatService{db: db, log: log.With("component", "chat_service")}
}

// History returns one page of the session user's chats.
func (s *ChatService) History(ctx context.Context, session models.Session, q models.ChatPageQuery) (*models.ChatPage, error) {
	page, err := s.db.GetChatsByUserID(ctx, session.UserID, q)
	if err != nil {
		return nil, errors.Wrap(err, "services.ChatService.History")
	}
	return page, nil
}

// DeleteHistory removes every chat of the session user.
func (s *ChatService) DeleteHistory(ctx context.Context, session models.Session) (*models.DeleteResult, error) {
	res, err := s.db.DeleteAllChatsByUserID(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "services.ChatService.DeleteHistory")
	}
	s.log.Info("history deleted", "user_id", session.UserID, "deleted", res.DeletedCount)
	return res, nil
}

// ChatDetail loads a chat with its messages, votes and stream ids. Private
// chats are only visible to their owner.
func (s *ChatService) ChatDetail(ctx context.Context, session models.Session, chatID string) (*models.ChatDetail, error) {
	chat, err := s.db.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, errors.Wrap(err, "services.ChatService.ChatDetail.GetChatByID")
	}
	if chat == nil {
		return nil, apperrors.New(apperrors.CodeNotFoundChat, "")
	}
	if chat.Visibility == models.VisibilityPrivate && chat.UserID != session.UserID {
		return nil, apperrors.New(apperrors.CodeForbiddenChat, "")
	}

	detail := &models.ChatDetail{Chat: chat}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		msgs, err := s.db.GetMessagesByChatID(gctx, chatID)
		detail.Messages = msgs
		return err
	})
	g.Go(func() error {
		votes, err := s.db.GetVotesByChatID(gctx, chatID)
		detail.Votes = votes
		return err
	})
	g.Go(func() error {
		ids, err := s.db.GetStreamIDsByChatID(gctx, chatID)
		detail.StreamIDs = ids
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "services.ChatService.ChatDetail")
	}
	return detail, nil
}

// DeleteChat removes a chat owned by the session user.
func (s *ChatService) DeleteChat(ctx context.Context, session models.Session, chatID string) (*models.Chat, error) {
	if _, err := s.ownedChat(ctx, session, chatID, apperrors.SurfaceChat); err != nil {
		return nil, err
	}
	deleted, err := s.db.DeleteChatByID(ctx, chatID)
	if err != nil {
		return nil, errors.Wrap(err, "services.ChatService.DeleteChat")
	}
	return deleted, nil
}

func (s *ChatService) UpdateVisibility(ctx context.Context, session models.Session, chatID string, visibility models.Visibility) error {
	if !visibility.Valid() {
		return apperrors.BadRequest(apperrors.SurfaceAPI, "Visibility must be public or private")
	}
	if _, err := s.ownedChat(ctx, session, chatID, apperrors.SurfaceChat); err != nil {
		return err
	}
	if err := s.db.UpdateChatVisibilityByID(ctx, chatID, visibility); err != nil {
		return errors.Wrap(err, "services.ChatService.UpdateVisibility")
	}
	return nil
}

// Votes lists the votes of a chat owned by the session user.
func (s *ChatService) Votes(ctx context.Context, session models.Session, chatID string) ([]models.Vote, error) {
	if _, err := s.ownedChat(ctx, session, chatID, apperrors.SurfaceVote); err != nil {
		return nil, err
	}
	votes, err := s.db.GetVotesByChatID(ctx, chatID)
	if err != nil {
		return nil, errors.Wrap(err, "services.ChatService.Votes")
	}
	return votes, nil
}

// Vote records or flips the session user's vote on a message of their chat.
func (s *ChatService) Vote(ctx context.Context, session models.Session, chatID, messageID string, voteType models.VoteType) error {
	if !voteType.Valid() {
		return apperrors.BadRequest(apperrors.SurfaceAPI, "Vote type must be up or down")
	}
	if _, err := s.ownedChat(ctx, session, chatID, apperrors.SurfaceVote); err != nil {
		return err
	}
	if err := s.db.VoteMessage(ctx, chatID, messageID, voteType); err != nil {
		return errors.Wrap(err, "services.ChatService.Vote")
	}
	return nil
}

// Entitlements reports the session user's message allowance for the last 24 hours.
func (s *ChatService) Entitlements(ctx context.Context, session models.Session) (*models.Entitlements, error) {
	limit, ok := maxMessagesPerDay[session.Type]
	if !ok {
		limit = maxMessagesPerDay[models.UserTypeGuest]
	}
	used, err := s.db.GetMessageCountByUserID(ctx, session.UserID, 24)
	if err != nil {
		return nil, errors.Wrap(err, "services.ChatService.Entitlements")
	}
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return &models.Entitlements{
		UserType:          session.Type,
		MaxMessagesPerDay: limit,
		UsedLast24h:       used,
		Remaining:         remaining,
	}, nil
}

func (s *ChatService) ownedChat(ctx context.Context, session models.Session, chatID string, surface apperrors.Surface) (*models.Chat, error) {
	chat, err := s.db.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, errors.Wrap(err, "services.ChatService.ownedChat")
	}
	if chat == nil {
		return nil, apperrors.NotFound(surface, "")
	}
	if chat.UserID != session.UserID {
		return nil, apperrors.Forbidden(surface, "")
	}
	return chat, nil
}
