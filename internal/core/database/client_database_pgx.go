package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/config"
	"github.com/markdave123-py/chathistory/internal/core"
)

var _ core.DbClient = (*DatabaseClient)(nil)

// DatabaseClient is the Postgres access layer. It is constructed once at startup
// and passed to whoever needs it.
type DatabaseClient struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// NewDatabaseClient opens the pool, applies migrations and verifies the column mapping.
func NewDatabaseClient(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DatabaseClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database client configuration is nil")
	}
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	maxOpen := cfg.DBMaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 20
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen / 2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureMigrated(ctx, sqlDB, log); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	if err := VerifySchema(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return New(sqlDB, log), nil
}

// New wraps an already opened and migrated pool.
func New(sqlDB *sql.DB, log *slog.Logger) *DatabaseClient {
	return &DatabaseClient{
		db:  sqlDB,
		log: log.With("component", "database"),
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// buildDSN appends verify-ca parameters when a root certificate is configured.
func buildDSN(cfg *config.Config) (string, error) {
	if cfg.DatabaseURL == "" {
		return "", fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.SslCertPath == "" {
		return cfg.DatabaseURL, nil
	}
	if _, err := os.Stat(cfg.SslCertPath); err != nil {
		return "", fmt.Errorf("ssl cert not accessible at %q: %w", cfg.SslCertPath, err)
	}

	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	q := u.Query()
	q.Set("sslmode", "verify-ca")
	q.Set("sslrootcert", cfg.SslCertPath)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *DatabaseClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

var qHealth = fmt.Sprintf(`SELECT %s FROM %s LIMIT 1`, healthcheckTable.c("id"), healthcheckTable.ident())

// Health reads one row from the healthcheck table.
func (c *DatabaseClient) Health(ctx context.Context) error {
	var id string
	err := c.db.QueryRowContext(ctx, qHealth).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}

// fail logs the store error and returns the structured error callers see.
// The store error itself does not leave this package.
func (c *DatabaseClient) fail(op string, err error, msg string) error {
	c.log.Error("database query failed", "op", op, "err", err)
	return apperrors.New(apperrors.CodeBadRequestDatabase, msg)
}

// withTx runs fn in a transaction, rolling back on any error.
func (c *DatabaseClient) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// nullJSON stores an empty payload as SQL NULL.
func nullJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

// jsonOrEmpty stores an empty payload as an empty JSON array.
func jsonOrEmpty(raw []byte) string {
	if len(raw) == 0 {
		return "[]"
	}
	return string(raw)
}
