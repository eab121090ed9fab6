package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/venturehub/venturehub/internal/accounts"
	"github.com/venturehub/venturehub/internal/app"
	"github.com/venturehub/venturehub/internal/auth"
	"github.com/venturehub/venturehub/internal/identity"
	"github.com/venturehub/venturehub/internal/identity/google"
	"github.com/venturehub/venturehub/internal/observability"
	"github.com/venturehub/venturehub/internal/platform/db"
	"github.com/venturehub/venturehub/internal/posts"
	"github.com/venturehub/venturehub/internal/token"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if err := db.Migrate(ctx, cfg.PGDSN); err != nil {
		logger.Error("migrate schema", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var googleVerifier identity.Verifier
	if cfg.GoogleClientID != "" {
		googleVerifier, err = google.New(ctx, cfg.GoogleClientID)
		if err != nil {
			logger.Error("init google verifier", slog.Any("error", err))
			os.Exit(1)
		}
	}

	issuer := token.NewIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	accountsRepo := accounts.NewRepository(pool)

	gate := auth.Middleware{Logger: logger, Tokens: issuer, Accounts: accountsRepo}

	authService := auth.NewService(accountsRepo, issuer, googleVerifier)
	authHandler := auth.NewHandler(logger, authService)

	accountsService := accounts.NewService(accountsRepo)
	accountsHandler := accounts.NewHandler(logger, accountsService)

	postsService := posts.NewService(posts.NewRepository(pool))
	postsHandler := posts.NewHandler(logger, postsService, gate)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		AuthHandler:     authHandler,
		AccountsHandler: accountsHandler,
		PostsHandler:    postsHandler,
		Gate:            gate,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
