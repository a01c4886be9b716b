package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/markdave123-py/chathistory/internal/apperrors"
)

const genericMessage = "Something went wrong. Please try again later."

type errorBody struct {
	Code    apperrors.Code `json:"code,omitempty"`
	Message string         `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error converts err into the {code, message} body. Errors on a logged surface
// keep their code but the message is replaced after logging. Errors outside
// apperrors are server faults and carry no code.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		log.Error("unhandled error", "path", r.URL.Path, "err", err)
		JSON(w, http.StatusInternalServerError, errorBody{Message: genericMessage})
		return
	}

	body := errorBody{Code: appErr.Code(), Message: appErr.Message}
	if appErr.Logged() {
		log.Error("request failed", "path", r.URL.Path, "code", appErr.Code(), "err", err)
		body.Message = genericMessage
	}
	JSON(w, appErr.StatusCode(), body)
}

// Decode reads a JSON body into v; malformed input is bad_request:api.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.CodeBadRequestAPI, "", err)
	}
	return nil
}
