package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
	"github.com/markdave123-py/chathistory/internal/services"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	chats *services.ChatService
	log   *slog.Logger
}

func NewHistoryHandler(chats *services.ChatService, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{chats: chats, log: log}
}

// GetHistory returns one page of the caller's chats, newest first.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}

	q, err := parsePageQuery(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	page, err := h.chats.History(r.Context(), session, q)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}

func (h *HistoryHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}

	res, err := h.chats.DeleteHistory(r.Context(), session)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func parsePageQuery(r *http.Request) (models.ChatPageQuery, error) {
	params := r.URL.Query()
	q := models.ChatPageQuery{
		Limit:         defaultHistoryLimit,
		StartingAfter: params.Get("starting_after"),
		EndingBefore:  params.Get("ending_before"),
	}

	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return q, apperrors.BadRequest(apperrors.SurfaceAPI, "Limit must be a positive integer")
		}
		q.Limit = min(n, maxHistoryLimit)
	}

	if q.StartingAfter != "" && q.EndingBefore != "" {
		return q, apperrors.BadRequest(apperrors.SurfaceAPI, "Only one of starting_after or ending_before can be provided.")
	}
	for _, cursor := range []string{q.StartingAfter, q.EndingBefore} {
		if cursor == "" {
			continue
		}
		if !isID(cursor) {
			return q, apperrors.BadRequest(apperrors.SurfaceAPI, "Cursor must be a chat id")
		}
	}
	return q, nil
}
