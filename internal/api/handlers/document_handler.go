package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
	"github.com/markdave123-py/chathistory/internal/services"
)

type DocumentHandler struct {
	docs *services.DocumentService
	log  *slog.Logger
}

func NewDocumentHandler(docs *services.DocumentService, log *slog.Logger) *DocumentHandler {
	return &DocumentHandler{docs: docs, log: log}
}

// GetDocument returns every version of the document, oldest first.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedDocument)
	if !ok {
		return
	}

	id, ok := h.documentID(w, r)
	if !ok {
		return
	}

	versions, err := h.docs.Versions(r.Context(), session, id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, versions)
}

type saveDocumentRequest struct {
	Title   string              `json:"title"`
	Content *string             `json:"content"`
	Kind    models.ArtifactKind `json:"kind"`
}

func (h *DocumentHandler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedDocument)
	if !ok {
		return
	}

	id, ok := h.documentID(w, r)
	if !ok {
		return
	}

	var req saveDocumentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	saved, err := h.docs.Save(r.Context(), session, models.Document{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Kind:    req.Kind,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, saved)
}

// DeleteDocument drops every version created after ?timestamp= (RFC 3339).
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedDocument)
	if !ok {
		return
	}

	id, ok := h.documentID(w, r)
	if !ok {
		return
	}

	ts, err := time.Parse(time.RFC3339Nano, r.URL.Query().Get("timestamp"))
	if err != nil {
		respond.Error(w, r, h.log, apperrors.BadRequest(apperrors.SurfaceAPI, "Parameter timestamp must be an RFC 3339 time."))
		return
	}

	deleted, err := h.docs.DeleteAfter(r.Context(), session, id, ts)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, deleted)
}

func (h *DocumentHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedSuggestions)
	if !ok {
		return
	}

	documentID := r.URL.Query().Get("documentId")
	if !requireID(w, r, h.log, "documentId", documentID) {
		return
	}

	suggestions, err := h.docs.Suggestions(r.Context(), session, documentID)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, suggestions)
}

func (h *DocumentHandler) documentID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if !requireID(w, r, h.log, "id", id) {
		return "", false
	}
	return id, true
}
