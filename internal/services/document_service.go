package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/core"
	"github.com/markdave123-py/chathistory/internal/models"
)

// DocumentService guards versioned documents and their suggestions by owner.
type DocumentService struct {
	db core.DbClient
}

func NewDocumentService(db core.DbClient) *DocumentService {
	return &DocumentService{db: db}
}

// Versions returns every version of a document owned by the session user.
func (s *DocumentService) Versions(ctx context.Context, session models.Session, id string) ([]models.Document, error) {
	docs, err := s.db.GetDocumentsByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "services.DocumentService.Versions")
	}
	if len(docs) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFoundDocument, "")
	}
	if docs[0].UserID != session.UserID {
		return nil, apperrors.New(apperrors.CodeForbiddenDocument, "")
	}
	return docs, nil
}

// Save stores a new version. An id already owned by someone else is refused.
func (s *DocumentService) Save(ctx context.Context, session models.Session, doc models.Document) (*models.Document, error) {
	if doc.ID == "" || doc.Title == "" {
		return nil, apperrors.New(apperrors.CodeBadRequestDocument, "Document id and title are required")
	}
	if doc.Kind == "" {
		doc.Kind = models.KindText
	}
	if !doc.Kind.Valid() {
		return nil, apperrors.New(apperrors.CodeBadRequestDocument, "Kind must be one of text, code, image or sheet")
	}

	existing, err := s.db.GetDocumentsByID(ctx, doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "services.DocumentService.Save.GetDocumentsByID")
	}
	if len(existing) > 0 && existing[0].UserID != session.UserID {
		return nil, apperrors.New(apperrors.CodeForbiddenDocument, "")
	}

	doc.UserID = session.UserID
	doc.CreatedAt = time.Time{}
	saved, err := s.db.SaveDocument(ctx, doc)
	if err != nil {
		return nil, errors.Wrap(err, "services.DocumentService.Save")
	}
	return saved, nil
}

// DeleteAfter reverts a document to the versions created at or before ts.
func (s *DocumentService) DeleteAfter(ctx context.Context, session models.Session, id string, ts time.Time) ([]models.Document, error) {
	if _, err := s.Versions(ctx, session, id); err != nil {
		return nil, err
	}
	deleted, err := s.db.DeleteDocumentsByIDAfterTimestamp(ctx, id, ts)
	if err != nil {
		return nil, errors.Wrap(err, "services.DocumentService.DeleteAfter")
	}
	return deleted, nil
}

// Suggestions lists suggestions for a document; all of them must belong to the session user.
func (s *DocumentService) Suggestions(ctx context.Context, session models.Session, documentID string) ([]models.Suggestion, error) {
	suggestions, err := s.db.GetSuggestionsByDocumentID(ctx, documentID)
	if err != nil {
		return nil, errors.Wrap(err, "services.DocumentService.Suggestions")
	}
	if len(suggestions) > 0 && suggestions[0].UserID != session.UserID {
		return nil, apperrors.Forbidden(apperrors.SurfaceSuggestions, "")
	}
	return suggestions, nil
}
