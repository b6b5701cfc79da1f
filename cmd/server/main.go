/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the HR demo platform server: configuration,
  logger, snapshot sink, application store, router, graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (environment variables via viper)
  2. Build the zap logger
  3. Open the snapshot sink for the configured driver
  4. Construct the application store (seeds on first run)
  5. Start the HTTP server with graceful shutdown

CONFIGURATION:
  SERVER_PORT               HTTP port (default 8080)
  STORAGE_DRIVER            file | sqlite | memory (default file)
  STORAGE_PATH              snapshot location (default ./data/hr-state.json)
  CORS_ORIGINS              comma-separated allowed origins
  NOTIFICATION_TTL_SECONDS  notification lifetime (default 5)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for
  in-flight requests, close the sink, exit.

EXAMPLES:
  # File-backed state (default)
  ./server

  # SQLite-backed state
  STORAGE_DRIVER=sqlite STORAGE_PATH=./data/hr.db ./server

  # Ephemeral state
  STORAGE_DRIVER=memory ./server
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/blackflag/hr-platform/api"
	"github.com/blackflag/hr-platform/config"
	"github.com/blackflag/hr-platform/persist"
	"github.com/blackflag/hr-platform/persist/sqlite"
	"github.com/blackflag/hr-platform/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Open the snapshot sink for the configured driver.
	var sink persist.Sink
	switch cfg.StorageDriver {
	case "sqlite":
		s, err := sqlite.New(cfg.StoragePath)
		if err != nil {
			logger.Fatal("failed to open sqlite sink", zap.Error(err))
		}
		defer s.Close()
		sink = s
	case "memory":
		sink = persist.NewMemory()
	case "file":
		sink = persist.NewFile(cfg.StoragePath)
	default:
		logger.Fatal("unknown storage driver", zap.String("driver", cfg.StorageDriver))
	}

	st := store.New(sink, store.Options{
		Logger:          logger,
		NotificationTTL: cfg.NotificationTTL(),
	})

	handler := api.NewHandler(st)
	router := api.NewRouter(handler, strings.Split(cfg.CORSOrigins, ","))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("storage_driver", cfg.StorageDriver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
