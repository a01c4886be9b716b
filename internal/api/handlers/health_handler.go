package handlers

import (
	"log/slog"
	"net/http"

	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/core"
)

type HealthHandler struct {
	db  core.DbClient
	log *slog.Logger
}

func NewHealthHandler(db core.DbClient, log *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.log.Error("health check failed", "err", err)
		respond.JSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Database connection failed.",
			"error":   err.Error(),
		})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Database connection is healthy.",
	})
}
