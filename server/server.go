package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/disgoorg/disgo/webhook"

	"github.com/knighthacks/blade/server/auth"
	"github.com/knighthacks/blade/server/database"
	"github.com/knighthacks/blade/server/discord"
	"github.com/knighthacks/blade/server/service"
	"github.com/knighthacks/blade/server/storage"
)

func New(cfg Config) (*Server, error) {
	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	discordClient, err := discord.New(cfg.Discord)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize discord client: %w", err)
	}

	storageClient, err := storage.New(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage client: %w", err)
	}

	var webhookClient *webhook.Client
	if cfg.Notifications.Enabled {
		webhookClient, err = webhook.NewWithURL(cfg.Notifications.WebhookURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize webhook client: %w", err)
		}
	}

	notifier := &Notifier{
		client: webhookClient,
	}

	s := &Server{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
		DB:         db,
		Discord:    discordClient,
		Storage:    storageClient,
		Notifier:   notifier,
		Auth:       auth.New(cfg.Auth),
		Service:    service.New(cfg.Club, db, discordClient, notifier, storageClient),
	}
	go s.provisionQRCodes()

	return s, nil
}

func cleanPathMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = path.Clean(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

type Server struct {
	Cfg        Config
	HTTPClient *http.Client
	DB         *database.Database
	Discord    *discord.Client
	Storage    *storage.Client
	Notifier   *Notifier
	Auth       *auth.Auth
	Service    *service.Service

	server *http.Server
}

func (s *Server) Start(handler http.Handler) {
	s.server = &http.Server{
		Addr:    s.Cfg.Server.Addr,
		Handler: cleanPathMiddleware(handler),
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.Any("err", err))
	}

	if err := s.DB.Close(); err != nil {
		slog.Error("Database close failed", slog.Any("err", err))
	}
}
