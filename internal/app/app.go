package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	middleware "github.com/markdave123-py/chathistory/internal/api/middlewares"
	"github.com/markdave123-py/chathistory/internal/config"
	"github.com/markdave123-py/chathistory/internal/core"
	db "github.com/markdave123-py/chathistory/internal/core/database"
	objectclient "github.com/markdave123-py/chathistory/internal/core/object-client"
	"github.com/markdave123-py/chathistory/internal/services"
)

type App struct {
	DBClient     core.DbClient
	ObjectClient core.ObjectClient
	Server       *Server
	log          *slog.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	dbClient, err := db.NewDatabaseClient(appCtx, cfg, log)
	if err != nil {
		return nil, errors.Wrap(err, "database")
	}
	log.Info("database initialized and ready")

	// attachments are optional; without a bucket uploads answer offline:files
	var objClient core.ObjectClient
	if cfg.StorageEnabled() {
		s3Client, err := objectclient.NewS3Client(appCtx, cfg, log)
		if err != nil {
			_ = dbClient.Close()
			return nil, errors.Wrap(err, "object storage")
		}
		objClient = s3Client
		log.Info("object client initialized and ready", "bucket", cfg.BucketName)
	} else {
		log.Warn("object storage not configured, attachment uploads are disabled")
	}

	deps := Deps{
		DB:        dbClient,
		Users:     services.NewUserService(dbClient),
		Chats:     services.NewChatService(dbClient, log),
		Documents: services.NewDocumentService(dbClient),
		Files:     services.NewFileService(objClient),
		Auth:      middleware.NewJWTAuth(cfg.JWTSecret, cfg.TokenTTL, log),
	}

	return &App{
		DBClient:     dbClient,
		ObjectClient: objClient,
		Server:       NewServer(cfg, deps, log),
		log:          log,
	}, nil
}

func (a *App) Close() {
	if a.DBClient != nil {
		if err := a.DBClient.Close(); err != nil {
			a.log.Error("closing database", "err", err)
		}
	}
}
