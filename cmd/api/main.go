package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/handler"
	"github.com/vaultpass/pwgen-go/internal/middleware"
	"github.com/vaultpass/pwgen-go/internal/repository"
	"github.com/vaultpass/pwgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	// Auditing is optional: without a reachable database the generator still serves.
	var db *sql.DB
	if pool, err := repository.NewDB(cfg.DatabaseDSN); err != nil {
		slog.Warn("database unavailable, audit log disabled", "error", err)
		if pool != nil {
			pool.Close()
		}
	} else if err := repository.EnsureSchema(context.Background(), pool); err != nil {
		slog.Warn("creating audit schema failed, audit log disabled", "error", err)
		pool.Close()
	} else {
		db = pool
		defer db.Close()
	}

	done := make(chan struct{})
	defer close(done)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, db, done),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "audit", db != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newRouter wires the HTTP surface. A nil db leaves the audit routes unmounted.
func newRouter(cfg config.Config, db *sql.DB, done <-chan struct{}) http.Handler {
	var recorder service.Recorder
	var genRepo *repository.GenerationRepository
	if db != nil {
		genRepo = repository.NewGenerationRepository(db)
		recorder = genRepo
	}

	genService := service.NewGeneratorService(recorder, crypto.NewHasher(crypto.DefaultHashParams()), cfg.HashMaxCount)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, done))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	if genRepo != nil {
		auditHandler := handler.NewAuditHandler(service.NewAuditService(genRepo))

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/generations", auditHandler.HandleListGenerations)
		})
	}

	return r
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
