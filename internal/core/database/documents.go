package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
)

var (
	qInsertDocument = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		documentTable.ident(), documentTable.list(), documentTable.placeholders(1), documentTable.list())
	qSelectDocumentVersions = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		documentTable.list(), documentTable.ident(), documentTable.c("id"), documentTable.c("createdAt"))
	qSelectLatestDocument = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT 1`,
		documentTable.list(), documentTable.ident(), documentTable.c("id"), documentTable.c("createdAt"))
	qDeleteSuggestionsAfter = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s > $2`,
		suggestionTable.ident(), suggestionTable.c("documentId"), suggestionTable.c("documentCreatedAt"))
	qDeleteDocumentsAfter = fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s > $2 RETURNING %s`,
		documentTable.ident(), documentTable.c("id"), documentTable.c("createdAt"), documentTable.list())
)

// SaveDocument always inserts: every save is a new version of doc.ID.
func (c *DatabaseClient) SaveDocument(ctx context.Context, doc models.Document) (*models.Document, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = c.now()
	}
	if doc.Kind == "" {
		doc.Kind = models.KindText
	}
	if !doc.Kind.Valid() {
		return nil, apperrors.New(apperrors.CodeBadRequestDatabase, fmt.Sprintf("Invalid document kind %q", doc.Kind))
	}

	saved, err := scanDocument(c.db.QueryRowContext(ctx, qInsertDocument,
		doc.ID, doc.CreatedAt.UTC(), doc.Title, doc.Content, string(doc.Kind), doc.UserID))
	if err != nil {
		return nil, c.fail("SaveDocument", err, "Failed to save document")
	}
	return &saved, nil
}

// GetDocumentsByID returns every version of the document, oldest first.
func (c *DatabaseClient) GetDocumentsByID(ctx context.Context, id string) ([]models.Document, error) {
	rows, err := c.db.QueryContext(ctx, qSelectDocumentVersions, id)
	if err != nil {
		return nil, c.fail("GetDocumentsByID", err, "Failed to get documents by id")
	}
	defer rows.Close()

	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, c.fail("GetDocumentsByID", err, "Failed to get documents by id")
	}
	return docs, nil
}

// GetDocumentByID returns the latest version, or nil when there is none.
func (c *DatabaseClient) GetDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	doc, err := scanDocument(c.db.QueryRowContext(ctx, qSelectLatestDocument, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, c.fail("GetDocumentByID", err, "Failed to get document by id")
	}
	return &doc, nil
}

// DeleteDocumentsByIDAfterTimestamp drops every version newer than ts, and the
// suggestions made against those versions, in one transaction.
func (c *DatabaseClient) DeleteDocumentsByIDAfterTimestamp(ctx context.Context, id string, ts time.Time) ([]models.Document, error) {
	ts = ts.UTC()
	var deleted []models.Document
	err := c.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qDeleteSuggestionsAfter, id, ts); err != nil {
			return err
		}
		rows, err := tx.QueryContext(ctx, qDeleteDocumentsAfter, id, ts)
		if err != nil {
			return err
		}
		defer rows.Close()
		deleted, err = collectDocuments(rows)
		return err
	})
	if err != nil {
		return nil, c.fail("DeleteDocumentsByIDAfterTimestamp", err, "Failed to delete documents by id after timestamp")
	}
	return deleted, nil
}

func collectDocuments(rows *sql.Rows) ([]models.Document, error) {
	out := []models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		d    models.Document
		kind string
	)
	if err := row.Scan(&d.ID, &d.CreatedAt, &d.Title, &d.Content, &kind, &d.UserID); err != nil {
		return models.Document{}, err
	}
	d.Kind = models.ArtifactKind(kind)
	return d, nil
}
