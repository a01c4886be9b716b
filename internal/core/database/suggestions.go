package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/markdave123-py/chathistory/internal/models"
)

var (
	qInsertSuggestion = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		suggestionTable.ident(), suggestionTable.list(), suggestionTable.placeholders(1))
	qSelectSuggestionsByDocument = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		suggestionTable.list(), suggestionTable.ident(), suggestionTable.c("documentId"), suggestionTable.c("createdAt"))
)

// SaveSuggestions inserts all suggestions in one transaction.
func (c *DatabaseClient) SaveSuggestions(ctx context.Context, suggestions []models.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	err := c.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, qInsertSuggestion)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range suggestions {
			if s.ID == "" {
				s.ID = uuid.NewString()
			}
			if s.CreatedAt.IsZero() {
				s.CreatedAt = c.now()
			}
			if _, err := stmt.ExecContext(ctx,
				s.ID, s.DocumentID, s.DocumentCreatedAt.UTC(), s.OriginalText, s.SuggestedText,
				s.Description, s.IsResolved, s.UserID, s.CreatedAt.UTC(),
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.fail("SaveSuggestions", err, "Failed to save suggestions")
	}
	return nil
}

func (c *DatabaseClient) GetSuggestionsByDocumentID(ctx context.Context, documentID string) ([]models.Suggestion, error) {
	rows, err := c.db.QueryContext(ctx, qSelectSuggestionsByDocument, documentID)
	if err != nil {
		return nil, c.fail("GetSuggestionsByDocumentID", err, "Failed to get suggestions by document id")
	}
	defer rows.Close()

	out := []models.Suggestion{}
	for rows.Next() {
		var s models.Suggestion
		if err := rows.Scan(
			&s.ID, &s.DocumentID, &s.DocumentCreatedAt, &s.OriginalText, &s.SuggestedText,
			&s.Description, &s.IsResolved, &s.UserID, &s.CreatedAt,
		); err != nil {
			return nil, c.fail("GetSuggestionsByDocumentID", err, "Failed to get suggestions by document id")
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, c.fail("GetSuggestionsByDocumentID", err, "Failed to get suggestions by document id")
	}
	return out, nil
}
