package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/markdave123-py/chathistory/internal/api/handlers"
	middleware "github.com/markdave123-py/chathistory/internal/api/middlewares"
	"github.com/markdave123-py/chathistory/internal/config"
	"github.com/markdave123-py/chathistory/internal/core"
	"github.com/markdave123-py/chathistory/internal/services"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	DB        core.DbClient
	Users     *services.UserService
	Chats     *services.ChatService
	Documents *services.DocumentService
	Files     *services.FileService
	Auth      *middleware.JWTAuth
}

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, deps Deps, log *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, deps, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

func NewRouter(cfg *config.Config, deps Deps, log *slog.Logger) http.Handler {
	healthHandler := handlers.NewHealthHandler(deps.DB, log)
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Auth, log)
	historyHandler := handlers.NewHistoryHandler(deps.Chats, log)
	chatHandler := handlers.NewChatHandler(deps.Chats, log)
	voteHandler := handlers.NewVoteHandler(deps.Chats, log)
	docHandler := handlers.NewDocumentHandler(deps.Documents, log)
	fileHandler := handlers.NewFileHandler(deps.Files, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(api chi.Router) {
		// public endpoints
		api.Get("/health", healthHandler.Health)
		api.Post("/auth/guest", authHandler.Guest)
		api.Post("/auth/register", authHandler.Register)
		api.Post("/auth/login", authHandler.Login)

		// protected endpoints
		api.Group(func(protected chi.Router) {
			protected.Use(deps.Auth.Middleware)

			protected.Get("/history", historyHandler.GetHistory)
			protected.Delete("/history", historyHandler.DeleteHistory)

			protected.Get("/chat/{id}", chatHandler.GetChat)
			protected.Delete("/chat/{id}", chatHandler.DeleteChat)
			protected.Patch("/chat/{id}/visibility", chatHandler.UpdateVisibility)
			protected.Get("/entitlements", chatHandler.Entitlements)

			protected.Get("/vote", voteHandler.GetVotes)
			protected.Patch("/vote", voteHandler.Vote)

			protected.Get("/document", docHandler.GetDocument)
			protected.Post("/document", docHandler.SaveDocument)
			protected.Delete("/document", docHandler.DeleteDocument)
			protected.Get("/suggestions", docHandler.GetSuggestions)

			protected.Post("/files/upload", fileHandler.Upload)
			protected.Get("/files/*", fileHandler.Download)
			protected.Delete("/files/*", fileHandler.Delete)
		})
	})

	return r
}

// Start runs the HTTP server. It returns nil once Shutdown has been called.
func (s *Server) Start() error {
	s.log.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
