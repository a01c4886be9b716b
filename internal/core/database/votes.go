package db

import (
	"context"
	"fmt"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
)

var (
	// one row per (chat, message); a second vote flips the polarity in place
	qUpsertVote = fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s`,
		voteTable.ident(), voteTable.list(), voteTable.placeholders(1),
		voteTable.c("chatId"), voteTable.c("messageId"), voteTable.c("isUpvoted"), voteTable.c("isUpvoted"))
	qSelectVotesByChat = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		voteTable.list(), voteTable.ident(), voteTable.c("chatId"))
)

func (c *DatabaseClient) VoteMessage(ctx context.Context, chatID, messageID string, voteType models.VoteType) error {
	if !voteType.Valid() {
		return apperrors.New(apperrors.CodeBadRequestDatabase, fmt.Sprintf("Invalid vote type %q", voteType))
	}
	if _, err := c.db.ExecContext(ctx, qUpsertVote, chatID, messageID, voteType == models.VoteUp); err != nil {
		return c.fail("VoteMessage", err, "Failed to vote message")
	}
	return nil
}

func (c *DatabaseClient) GetVotesByChatID(ctx context.Context, chatID string) ([]models.Vote, error) {
	rows, err := c.db.QueryContext(ctx, qSelectVotesByChat, chatID)
	if err != nil {
		return nil, c.fail("GetVotesByChatID", err, "Failed to get votes by chat id")
	}
	defer rows.Close()

	out := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ChatID, &v.MessageID, &v.IsUpvoted); err != nil {
			return nil, c.fail("GetVotesByChatID", err, "Failed to get votes by chat id")
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, c.fail("GetVotesByChatID", err, "Failed to get votes by chat id")
	}
	return out, nil
}
