package handlers

import (
	"log/slog"
	"net/http"

	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
	"github.com/markdave123-py/chathistory/internal/services"
)

type VoteHandler struct {
	chats *services.ChatService
	log   *slog.Logger
}

func NewVoteHandler(chats *services.ChatService, log *slog.Logger) *VoteHandler {
	return &VoteHandler{chats: chats, log: log}
}

func (h *VoteHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedVote)
	if !ok {
		return
	}

	chatID := r.URL.Query().Get("chatId")
	if !requireID(w, r, h.log, "chatId", chatID) {
		return
	}

	votes, err := h.chats.Votes(r.Context(), session, chatID)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, votes)
}

type voteRequest struct {
	ChatID    string          `json:"chatId"`
	MessageID string          `json:"messageId"`
	Type      models.VoteType `json:"type"`
}

func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedVote)
	if !ok {
		return
	}

	var req voteRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	if req.ChatID == "" || req.MessageID == "" || req.Type == "" {
		respond.Error(w, r, h.log, apperrors.BadRequest(apperrors.SurfaceAPI, "Parameters chatId, messageId, and type are required."))
		return
	}
	if !requireID(w, r, h.log, "chatId", req.ChatID) || !requireID(w, r, h.log, "messageId", req.MessageID) {
		return
	}

	if err := h.chats.Vote(r.Context(), session, req.ChatID, req.MessageID, req.Type); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "Message voted"})
}
