package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	middleware "github.com/markdave123-py/chathistory/internal/api/middlewares"
	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
)

// requireSession writes 401 and returns false when the request carries no session.
func requireSession(w http.ResponseWriter, r *http.Request, log *slog.Logger, code apperrors.Code) (models.Session, bool) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respond.Error(w, r, log, apperrors.New(code, ""))
		return models.Session{}, false
	}
	return s, true
}

// requireID writes 400 bad_request:api and returns false unless value is a uuid.
func requireID(w http.ResponseWriter, r *http.Request, log *slog.Logger, name, value string) bool {
	if value == "" {
		respond.Error(w, r, log, apperrors.BadRequest(apperrors.SurfaceAPI, "Parameter "+name+" is required."))
		return false
	}
	if !isID(value) {
		respond.Error(w, r, log, apperrors.BadRequest(apperrors.SurfaceAPI, "Parameter "+name+" must be a valid id."))
		return false
	}
	return true
}

// isID accepts only the canonical 36 character uuid form the store uses.
func isID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
