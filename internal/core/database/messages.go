package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/markdave123-py/chathistory/internal/models"
)

var (
	qInsertMessage = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		messageTable.ident(), messageTable.list(), messageTable.placeholders(1))
	qSelectMessagesByChat = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		messageTable.list(), messageTable.ident(), messageTable.c("chatId"), messageTable.c("createdAt"), messageTable.c("id"))
	qSelectMessageByID = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		messageTable.list(), messageTable.ident(), messageTable.c("id"))

	messagesFromTimestamp = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s >= $2`,
		messageTable.c("id"), messageTable.ident(), messageTable.c("chatId"), messageTable.c("createdAt"))
	qDeleteVotesOfMessagesFrom = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s IN (%s)`,
		voteTable.ident(), voteTable.c("chatId"), voteTable.c("messageId"), messagesFromTimestamp)
	qDeleteMessagesFrom = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s >= $2`,
		messageTable.ident(), messageTable.c("chatId"), messageTable.c("createdAt"))

	qCountUserMessages = fmt.Sprintf(`
		SELECT count(m.%s)
		FROM %s m
		JOIN %s c ON c.%s = m.%s
		WHERE c.%s = $1 AND m.%s >= $2 AND m.%s = 'user'`,
		messageTable.c("id"),
		messageTable.ident(),
		chatTable.ident(), chatTable.c("id"), messageTable.c("chatId"),
		chatTable.c("userId"), messageTable.c("createdAt"), messageTable.c("role"))
)

// SaveMessages inserts messages in a single transaction. Missing ids and
// timestamps are filled in; the caller's slice is not modified.
func (c *DatabaseClient) SaveMessages(ctx context.Context, messages []models.Message) error {
	if len(messages) == 0 {
		return nil
	}
	err := c.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, qInsertMessage)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := range messages {
			m := messages[i]
			if m.ID == "" {
				m.ID = uuid.NewString()
			}
			if m.CreatedAt.IsZero() {
				m.CreatedAt = c.now()
			}
			if _, err := stmt.ExecContext(ctx,
				m.ID, m.ChatID, m.Role, jsonOrEmpty(m.Parts), jsonOrEmpty(m.Attachments), m.CreatedAt.UTC(),
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.fail("SaveMessages", err, "Failed to save messages")
	}
	return nil
}

// GetMessagesByChatID returns the chat's messages oldest first.
func (c *DatabaseClient) GetMessagesByChatID(ctx context.Context, chatID string) ([]models.Message, error) {
	rows, err := c.db.QueryContext(ctx, qSelectMessagesByChat, chatID)
	if err != nil {
		return nil, c.fail("GetMessagesByChatID", err, "Failed to get messages by chat id")
	}
	defer rows.Close()

	out := []models.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, c.fail("GetMessagesByChatID", err, "Failed to get messages by chat id")
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, c.fail("GetMessagesByChatID", err, "Failed to get messages by chat id")
	}
	return out, nil
}

// GetMessageByID returns nil when the message does not exist.
func (c *DatabaseClient) GetMessageByID(ctx context.Context, id string) (*models.Message, error) {
	m, err := scanMessage(c.db.QueryRowContext(ctx, qSelectMessageByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, c.fail("GetMessageByID", err, "Failed to get message by id")
	}
	return &m, nil
}

// DeleteMessagesByChatIDAfterTimestamp removes the messages created at or after ts,
// with their votes, and returns how many messages went away.
func (c *DatabaseClient) DeleteMessagesByChatIDAfterTimestamp(ctx context.Context, chatID string, ts time.Time) (int64, error) {
	ts = ts.UTC()
	var deleted int64
	err := c.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qDeleteVotesOfMessagesFrom, chatID, ts); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, qDeleteMessagesFrom, chatID, ts)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, c.fail("DeleteMessagesByChatIDAfterTimestamp", err, "Failed to delete messages by chat id after timestamp")
	}
	return deleted, nil
}

// GetMessageCountByUserID counts user-role messages sent in the user's chats
// during the last differenceInHours hours.
func (c *DatabaseClient) GetMessageCountByUserID(ctx context.Context, userID string, differenceInHours int) (int, error) {
	since := c.now().Add(-time.Duration(differenceInHours) * time.Hour)

	var n int
	if err := c.db.QueryRowContext(ctx, qCountUserMessages, userID, since).Scan(&n); err != nil {
		return 0, c.fail("GetMessageCountByUserID", err, "Failed to get message count by user id")
	}
	return n, nil
}

func scanMessage(row rowScanner) (models.Message, error) {
	var (
		m                  models.Message
		parts, attachments []byte
	)
	if err := row.Scan(&m.ID, &m.ChatID, &m.Role, &parts, &attachments, &m.CreatedAt); err != nil {
		return models.Message{}, err
	}
	m.Parts = parts
	m.Attachments = attachments
	return m, nil
}
