package handlers

import (
	"log/slog"
	"net/http"

	middleware "github.com/markdave123-py/chathistory/internal/api/middlewares"
	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/models"
	"github.com/markdave123-py/chathistory/internal/services"
)

type AuthHandler struct {
	users *services.UserService
	auth  *middleware.JWTAuth
	log   *slog.Logger
}

func NewAuthHandler(users *services.UserService, auth *middleware.JWTAuth, log *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, auth: auth, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Type  models.UserType `json:"type"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

// Guest provisions an anonymous user and returns a guest session.
func (h *AuthHandler) Guest(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.ProvisionGuest(r.Context())
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	h.issue(w, r, user, models.UserTypeGuest, http.StatusCreated)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	h.issue(w, r, user, models.UserTypeRegular, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	h.issue(w, r, user, models.UserTypeRegular, http.StatusOK)
}

func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, user *models.User, userType models.UserType, status int) {
	token, err := h.auth.IssueToken(models.Session{UserID: user.ID, Type: userType})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, status, sessionResponse{
		Token: token,
		User:  sessionUser{ID: user.ID, Email: user.Email, Type: userType},
	})
}
