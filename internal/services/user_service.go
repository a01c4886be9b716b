package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/core"
	"github.com/markdave123-py/chathistory/internal/models"
)

// compared against when the email is unknown
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)

type UserService struct {
	db core.DbClient
}

func NewUserService(db core.DbClient) *UserService {
	return &UserService{db: db}
}

// ProvisionGuest creates an anonymous account for a session without signup.
func (s *UserService) ProvisionGuest(ctx context.Context) (*models.User, error) {
	u, err := s.db.CreateGuestUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "services.UserService.ProvisionGuest")
	}
	return u, nil
}

// Register creates a regular account. Emails already in use are rejected.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	existing, err := s.db.GetUser(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "services.UserService.Register.GetUser")
	}
	if len(existing) > 0 {
		return nil, apperrors.BadRequest(apperrors.SurfaceAuth, "User already exists")
	}

	u, err := s.db.CreateUser(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(err, "services.UserService.Register.CreateUser")
	}
	return u, nil
}

// Authenticate checks credentials for a regular account.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	users, err := s.db.GetUser(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "services.UserService.Authenticate")
	}

	if len(users) == 0 || users[0].PasswordHash == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperrors.New(apperrors.CodeUnauthorizedAuth, "Invalid credentials")
	}
	u := users[0]
	if bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.New(apperrors.CodeUnauthorizedAuth, "Invalid credentials")
	}
	return &u, nil
}

func validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") || len(email) > 64 {
		return apperrors.BadRequest(apperrors.SurfaceAuth, "A valid email of at most 64 characters is required")
	}
	// bcrypt only looks at the first 72 bytes
	if len(password) < 6 || len(password) > 72 {
		return apperrors.BadRequest(apperrors.SurfaceAuth, "Password must be between 6 and 72 characters")
	}
	return nil
}
