package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsTable = "chathistory_migrations"

// EnsureMigrated applies every embedded migration that has not run yet.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	ctxBoot, cancel := context.WithTimeout(ctx, 3*time.Minute)
	defer cancel()

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(migrationsTable)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "bootstrap.SetDialect")
	}

	if err := goose.UpContext(ctxBoot, db, "migrations"); err != nil {
		return errors.Wrap(err, "bootstrap.Up")
	}

	version, err := goose.GetDBVersionContext(ctxBoot, db)
	if err != nil {
		return errors.Wrap(err, "bootstrap.GetDBVersion")
	}
	log.Info("schema migrated", "version", version)
	return nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	log *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...), "component", "goose")
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...), "component", "goose")
	panic(fmt.Sprintf(format, v...))
}
