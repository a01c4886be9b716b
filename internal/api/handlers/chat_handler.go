package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
	"github.com/markdave123-py/chathistory/internal/services"
)

type ChatHandler struct {
	chats *services.ChatService
	log   *slog.Logger
}

func NewChatHandler(chats *services.ChatService, log *slog.Logger) *ChatHandler {
	return &ChatHandler{chats: chats, log: log}
}

func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}

	chatID := chi.URLParam(r, "id")
	if !requireID(w, r, h.log, "id", chatID) {
		return
	}

	detail, err := h.chats.ChatDetail(r.Context(), session, chatID)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, detail)
}

func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}

	chatID := chi.URLParam(r, "id")
	if !requireID(w, r, h.log, "id", chatID) {
		return
	}

	deleted, err := h.chats.DeleteChat(r.Context(), session, chatID)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, deleted)
}

type visibilityRequest struct {
	Visibility models.Visibility `json:"visibility"`
}

func (h *ChatHandler) UpdateVisibility(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}

	chatID := chi.URLParam(r, "id")
	if !requireID(w, r, h.log, "id", chatID) {
		return
	}

	var req visibilityRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if err := h.chats.UpdateVisibility(r.Context(), session, chatID, req.Visibility); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Entitlements reports how many messages the caller may still send today.
func (h *ChatHandler) Entitlements(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}

	ent, err := h.chats.Entitlements(r.Context(), session)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, ent)
}
