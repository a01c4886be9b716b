package db

import (
	"context"
	"fmt"
)

var (
	qInsertStream = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		streamTable.ident(), streamTable.list(), streamTable.placeholders(1))
	qSelectStreamIDsByChat = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		streamTable.c("id"), streamTable.ident(), streamTable.c("chatId"), streamTable.c("createdAt"))
)

// CreateStreamID records a resumable stream for the chat.
func (c *DatabaseClient) CreateStreamID(ctx context.Context, streamID, chatID string) error {
	if _, err := c.db.ExecContext(ctx, qInsertStream, streamID, chatID, c.now()); err != nil {
		return c.fail("CreateStreamID", err, "Failed to create stream id")
	}
	return nil
}

// GetStreamIDsByChatID returns stream ids oldest first.
func (c *DatabaseClient) GetStreamIDsByChatID(ctx context.Context, chatID string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, qSelectStreamIDsByChat, chatID)
	if err != nil {
		return nil, c.fail("GetStreamIDsByChatID", err, "Failed to get stream ids by chat id")
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, c.fail("GetStreamIDsByChatID", err, "Failed to get stream ids by chat id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, c.fail("GetStreamIDsByChatID", err, "Failed to get stream ids by chat id")
	}
	return ids, nil
}
