package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
)

var (
	qInsertChat = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		chatTable.ident(), chatTable.list(), chatTable.placeholders(1))
	qSelectChatByID = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		chatTable.list(), chatTable.ident(), chatTable.c("id"))
	qSelectChatCreatedAt = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		chatTable.c("createdAt"), chatTable.ident(), chatTable.c("id"))
	qUpdateChatVisibility = fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		chatTable.ident(), chatTable.c("visibility"), chatTable.c("id"))
	qUpdateChatLastContext = fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		chatTable.ident(), chatTable.c("lastContext"), chatTable.c("id"))

	// dependents of one chat, deleted in this order before the chat row
	qDeleteChatDependents = []string{
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, voteTable.ident(), voteTable.c("chatId")),
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, messageTable.ident(), messageTable.c("chatId")),
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, streamTable.ident(), streamTable.c("chatId")),
	}
	qDeleteChatReturning = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		chatTable.ident(), chatTable.c("id"), chatTable.list())

	chatsOfUser = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		chatTable.c("id"), chatTable.ident(), chatTable.c("userId"))

	// dependents of every chat owned by a user
	qDeleteUserChatDependents = []string{
		fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s)`, voteTable.ident(), voteTable.c("chatId"), chatsOfUser),
		fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s)`, messageTable.ident(), messageTable.c("chatId"), chatsOfUser),
		fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s)`, streamTable.ident(), streamTable.c("chatId"), chatsOfUser),
	}
	qDeleteChatsByUser = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, chatTable.ident(), chatTable.c("userId"))
)

func (c *DatabaseClient) SaveChat(ctx context.Context, id, userID, title string, visibility models.Visibility) error {
	if visibility == "" {
		visibility = models.VisibilityPrivate
	}
	if !visibility.Valid() {
		return apperrors.New(apperrors.CodeBadRequestDatabase, fmt.Sprintf("Invalid visibility %q", visibility))
	}
	_, err := c.db.ExecContext(ctx, qInsertChat, id, c.now(), title, userID, string(visibility), nil)
	if err != nil {
		return c.fail("SaveChat", err, "Failed to save chat")
	}
	return nil
}

// GetChatByID returns nil when the chat does not exist.
func (c *DatabaseClient) GetChatByID(ctx context.Context, id string) (*models.Chat, error) {
	ch, err := scanChat(c.db.QueryRowContext(ctx, qSelectChatByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, c.fail("GetChatByID", err, "Failed to get chat by id")
	}
	return &ch, nil
}

// DeleteChatByID removes the chat with its votes, messages and streams in one
// transaction. It returns the deleted chat, or nil if there was none.
func (c *DatabaseClient) DeleteChatByID(ctx context.Context, id string) (*models.Chat, error) {
	var deleted *models.Chat
	err := c.withTx(ctx, func(tx *sql.Tx) error {
		for _, q := range qDeleteChatDependents {
			if _, err := tx.ExecContext(ctx, q, id); err != nil {
				return err
			}
		}
		ch, err := scanChat(tx.QueryRowContext(ctx, qDeleteChatReturning, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		deleted = &ch
		return nil
	})
	if err != nil {
		return nil, c.fail("DeleteChatByID", err, "Failed to delete chat by id")
	}
	return deleted, nil
}

// DeleteAllChatsByUserID removes every chat owned by userID and their dependents.
func (c *DatabaseClient) DeleteAllChatsByUserID(ctx context.Context, userID string) (*models.DeleteResult, error) {
	var count int64
	err := c.withTx(ctx, func(tx *sql.Tx) error {
		for _, q := range qDeleteUserChatDependents {
			if _, err := tx.ExecContext(ctx, q, userID); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx, qDeleteChatsByUser, userID)
		if err != nil {
			return err
		}
		count, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return nil, c.fail("DeleteAllChatsByUserID", err, "Failed to delete all chats by user id")
	}
	return &models.DeleteResult{DeletedCount: count}, nil
}

// GetChats pages through every chat, newest first.
func (c *DatabaseClient) GetChats(ctx context.Context, q models.ChatPageQuery) (*models.ChatPage, error) {
	return c.pageChats(ctx, "GetChats", "", q, "Failed to get chats")
}

// GetChatsByUserID pages through the chats owned by userID, newest first.
func (c *DatabaseClient) GetChatsByUserID(ctx context.Context, userID string, q models.ChatPageQuery) (*models.ChatPage, error) {
	return c.pageChats(ctx, "GetChatsByUserID", userID, q, "Failed to get chats by user id")
}

// pageChats is keyset pagination over (createdat, id) descending. It fetches
// one row past the limit to learn whether another page exists.
func (c *DatabaseClient) pageChats(ctx context.Context, op, userID string, q models.ChatPageQuery, failMsg string) (*models.ChatPage, error) {
	if q.StartingAfter != "" && q.EndingBefore != "" {
		return nil, apperrors.New(apperrors.CodeBadRequestDatabase,
			"Only one of starting_after or ending_before can be provided.")
	}
	if q.Limit <= 0 {
		return nil, apperrors.New(apperrors.CodeBadRequestDatabase, "Limit must be a positive integer.")
	}

	var (
		conds []string
		args  []any
	)
	if userID != "" {
		args = append(args, userID)
		conds = append(conds, fmt.Sprintf("%s = $%d", chatTable.c("userId"), len(args)))
	}

	cursorID, cmp := q.StartingAfter, ">"
	if q.EndingBefore != "" {
		cursorID, cmp = q.EndingBefore, "<"
	}
	if cursorID != "" {
		var cursorAt sql.NullTime
		err := c.db.QueryRowContext(ctx, qSelectChatCreatedAt, cursorID).Scan(&cursorAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFoundDatabase, fmt.Sprintf("Chat with id %s not found", cursorID))
		}
		if err != nil {
			return nil, c.fail(op, err, failMsg)
		}
		args = append(args, cursorAt.Time, cursorID)
		conds = append(conds, fmt.Sprintf("(%s, %s) %s ($%d::timestamp, $%d::uuid)",
			chatTable.c("createdAt"), chatTable.c("id"), cmp, len(args)-1, len(args)))
	}
	args = append(args, q.Limit+1)

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", chatTable.list(), chatTable.ident())
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	fmt.Fprintf(&sb, " ORDER BY %s DESC, %s DESC LIMIT $%d", chatTable.c("createdAt"), chatTable.c("id"), len(args))

	rows, err := c.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, c.fail(op, err, failMsg)
	}
	defer rows.Close()

	chats := []models.Chat{}
	for rows.Next() {
		ch, err := scanChat(rows)
		if err != nil {
			return nil, c.fail(op, err, failMsg)
		}
		chats = append(chats, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, c.fail(op, err, failMsg)
	}

	hasMore := len(chats) > q.Limit
	if hasMore {
		chats = chats[:q.Limit]
	}
	return &models.ChatPage{Chats: chats, HasMore: hasMore}, nil
}

func (c *DatabaseClient) UpdateChatVisibilityByID(ctx context.Context, chatID string, visibility models.Visibility) error {
	if !visibility.Valid() {
		return apperrors.New(apperrors.CodeBadRequestDatabase, fmt.Sprintf("Invalid visibility %q", visibility))
	}
	if _, err := c.db.ExecContext(ctx, qUpdateChatVisibility, chatID, string(visibility)); err != nil {
		return c.fail("UpdateChatVisibilityByID", err, "Failed to update chat visibility by id")
	}
	return nil
}

// UpdateChatLastContextByID stores the latest usage snapshot. Failures are only logged.
func (c *DatabaseClient) UpdateChatLastContextByID(ctx context.Context, chatID string, lastContext json.RawMessage) {
	if _, err := c.db.ExecContext(ctx, qUpdateChatLastContext, chatID, nullJSON(lastContext)); err != nil {
		c.log.Warn("failed to update lastContext for chat", "chat_id", chatID, "err", err)
	}
}

func scanChat(row rowScanner) (models.Chat, error) {
	var (
		ch          models.Chat
		visibility  string
		lastContext []byte
	)
	if err := row.Scan(&ch.ID, &ch.CreatedAt, &ch.Title, &ch.UserID, &visibility, &lastContext); err != nil {
		return models.Chat{}, err
	}
	ch.Visibility = models.Visibility(visibility)
	if len(lastContext) > 0 {
		ch.LastContext = json.RawMessage(lastContext)
	}
	return ch, nil
}
