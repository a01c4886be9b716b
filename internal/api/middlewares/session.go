package middleware

import (
	"context"

	"github.com/markdave123-py/chathistory/internal/models"
)

type sessionKey struct{}

func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session attached by JWTAuth.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(models.Session)
	return s, ok && s.UserID != ""
}
