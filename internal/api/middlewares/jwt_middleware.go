package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/models"
)

type sessionClaims struct {
	UserID   string          `json:"user_id"`
	UserType models.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// JWTAuth issues and verifies the HS256 session tokens.
type JWTAuth struct {
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
	now    func() time.Time
}

func NewJWTAuth(secret string, ttl time.Duration, log *slog.Logger) *JWTAuth {
	return &JWTAuth{secret: []byte(secret), ttl: ttl, log: log, now: time.Now}
}

// IssueToken creates a signed token carrying the session's user id and type.
func (a *JWTAuth) IssueToken(s models.Session) (string, error) {
	claims := sessionClaims{
		UserID:   s.UserID,
		UserType: s.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(a.now()),
			ExpiresAt: jwt.NewNumericDate(a.now().Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates a token and returns the session it carries.
func (a *JWTAuth) Parse(tokenStr string) (models.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil || !token.Valid {
		return models.Session{}, apperrors.Wrap(apperrors.CodeUnauthorizedChat, "", err)
	}
	if claims.UserID == "" {
		return models.Session{}, apperrors.New(apperrors.CodeUnauthorizedChat, "")
	}
	if claims.UserType != models.UserTypeRegular {
		claims.UserType = models.UserTypeGuest
	}
	return models.Session{UserID: claims.UserID, Type: claims.UserType}, nil
}

// Middleware validates the Authorization header and attaches the session to the request context.
func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			respond.Error(w, r, a.log, apperrors.New(apperrors.CodeUnauthorizedChat, ""))
			return
		}

		session, err := a.Parse(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			respond.Error(w, r, a.log, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}
