package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/marqspnosa/shopwise/internal/access"
	"github.com/marqspnosa/shopwise/internal/config"
	"github.com/marqspnosa/shopwise/internal/db"
	"github.com/marqspnosa/shopwise/internal/events"
	"github.com/marqspnosa/shopwise/internal/httpserver"
	"github.com/marqspnosa/shopwise/internal/logging"
	authmw "github.com/marqspnosa/shopwise/internal/middleware/auth"
	"github.com/marqspnosa/shopwise/internal/repo"
	"github.com/marqspnosa/shopwise/internal/service"
	"github.com/marqspnosa/shopwise/internal/tokens"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	pub := events.New(cfg.KafkaBrokers)
	store := repo.New(gdb)
	ts := tokens.NewService(cfg.JWTSecret, cfg.AccessTokenTTL)

	e := httpserver.NewServer(&httpserver.Deps{
		DB:             gdb,
		Logger:         logger,
		FrontendOrigin: cfg.FrontendOrigin,
		Auth:           authmw.New(access.NewGuard(ts, store)),
		AuthHandler: &httpserver.AuthHTTP{
			Svc: &service.AuthService{Repo: store, Tokens: ts, Events: pub},
		},
		ProductHandler: &httpserver.ProductHTTP{
			Svc: &service.CatalogService{Repo: store, Events: pub},
		},
	})

	addr := ":" + strconv.Itoa(cfg.ServerPort)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
	if err := pub.Close(); err != nil {
		logger.Error("kafka close", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db close", "error", err)
	}

	logger.Info("shutdown complete")
}
