package main

// @title           Shelfshare Catalog API
// @version         1.0
// @description     Book catalog and stock API: books, stock, authors and genres.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:4002
// @BasePath  /

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare-catalog/internal/config"
	"github.com/snnyvrz/shelfshare-catalog/internal/db"
	"github.com/snnyvrz/shelfshare-catalog/internal/handler"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			slog.Warn("closing database", "error", err)
		}
	}()

	if cfg.DBAutoMigrate {
		if err := db.Migrate(database); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.NewRouter(database, startTime, appVersion),
	}

	go func() {
		slog.Info("catalog server listening", "addr", cfg.Addr(), "version", appVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown", "error", err)
	}

	slog.Info("server exiting")
}
