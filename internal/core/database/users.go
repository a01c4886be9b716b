package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/markdave123-py/chathistory/internal/models"
)

var (
	qSelectUsersByEmail = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userTable.list(), userTable.ident(), userTable.c("email"))
	qInsertUser = fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		userTable.ident(), userTable.list(), userTable.placeholders(1))
)

// GetUser returns every user row registered under email.
func (c *DatabaseClient) GetUser(ctx context.Context, email string) ([]models.User, error) {
	rows, err := c.db.QueryContext(ctx, qSelectUsersByEmail, email)
	if err != nil {
		return nil, c.fail("GetUser", err, "Failed to get user by email")
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
			return nil, c.fail("GetUser", err, "Failed to get user by email")
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, c.fail("GetUser", err, "Failed to get user by email")
	}
	return out, nil
}

// CreateUser stores a regular user with a bcrypt hash of password.
func (c *DatabaseClient) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := generateHashedPassword(password)
	if err != nil {
		return nil, c.fail("CreateUser", err, "Failed to create user")
	}
	u := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: &hash}
	if _, err := c.db.ExecContext(ctx, qInsertUser, u.ID, u.Email, hash); err != nil {
		return nil, c.fail("CreateUser", err, "Failed to create user")
	}
	return u, nil
}

// CreateGuestUser provisions an anonymous account: a timestamped email with a
// random suffix and the hash of a random password nobody knows.
func (c *DatabaseClient) CreateGuestUser(ctx context.Context) (*models.User, error) {
	email := fmt.Sprintf("guest-%d-%s", c.now().UnixMilli(), uuid.NewString()[:8])
	hash, err := generateHashedPassword(uuid.NewString())
	if err != nil {
		return nil, c.fail("CreateGuestUser", err, "Failed to create guest user")
	}
	u := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: &hash}
	if _, err := c.db.ExecContext(ctx, qInsertUser, u.ID, u.Email, hash); err != nil {
		return nil, c.fail("CreateGuestUser", err, "Failed to create guest user")
	}
	return u, nil
}

func generateHashedPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
