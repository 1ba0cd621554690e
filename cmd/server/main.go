package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskhive/accounts/internal/account"
	"github.com/taskhive/accounts/internal/auth"
	"github.com/taskhive/accounts/internal/httpapi"
	"github.com/taskhive/accounts/pkg/config"
	"github.com/taskhive/accounts/pkg/cookie"
	"github.com/taskhive/accounts/pkg/email"
	"github.com/taskhive/accounts/pkg/httpserver"
	"github.com/taskhive/accounts/pkg/logger"
	mongodb "github.com/taskhive/accounts/pkg/mongo"
)

type appConfig struct {
	Logger logger.Config
	Mongo  mongodb.Config
	HTTP   httpserver.Config
	Cookie cookie.Config
	Email  email.Config
	Tokens auth.TokenConfig
	Auth   auth.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(cfg.Logger, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := mongodb.NewWithDatabase(ctx, cfg.Mongo)
	if err != nil {
		log.Error("failed to connect to mongodb", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	repo := account.NewRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Error("failed to ensure indexes", logger.Error(err))
		os.Exit(1)
	}

	codec, err := auth.NewTokenCodec(cfg.Tokens)
	if err != nil {
		log.Error("invalid token configuration", logger.Error(err))
		os.Exit(1)
	}

	svc := auth.NewService(repo, newMailer(cfg.Email, log), codec, cfg.Auth,
		auth.WithLogger(log),
	)

	handler := httpapi.NewHandler(svc, cookie.NewFromConfig(cfg.Cookie),
		httpapi.WithLogger(log),
		httpapi.WithHealthcheck(mongodb.Healthcheck(db.Client())),
		httpapi.WithTokenTTLs(codec.TTL(auth.TokenAccess), codec.TTL(auth.TokenRefresh)),
	)

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, handler.Routes()); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

// newMailer prefers Postmark when both tokens are configured and falls back
// to the filesystem sender for local development.
func newMailer(cfg email.Config, log *slog.Logger) email.EmailSender {
	if cfg.PostmarkServerToken != "" && cfg.PostmarkAccountToken != "" {
		sender, err := email.NewPostmarkClient(cfg)
		if err == nil {
			return sender
		}
		log.Warn("postmark misconfigured, using dev sender", logger.Error(err))
	}

	log.Info("email delivery in dev mode", slog.String("dir", cfg.DevOutputDir))
	return email.NewDevSender(cfg.DevOutputDir)
}
