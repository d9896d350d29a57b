package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/quickly-pick-web/cliparse"
	"github.com/danielhkuo/quickly-pick-web/db"
	"github.com/danielhkuo/quickly-pick-web/logging"
	"github.com/danielhkuo/quickly-pick-web/metrics"
	"github.com/danielhkuo/quickly-pick-web/router"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

func main() {
	var err error

	cliparse.LoadDotEnv()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	// Open client storage
	backend, closer, err := openBackend(cfg)
	if err != nil {
		slog.Error("storage setup failed", "storage", cfg.StorageType, "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.Info("Client storage ready", "storage", cfg.StorageType)

	// Create router
	mux := router.NewRouter(backend, cfg, metrics.NewRegistry())

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "api", cfg.BaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openBackend connects the configured client storage
func openBackend(cfg cliparse.Config) (storage.Backend, io.Closer, error) {
	switch cfg.StorageType {
	case cliparse.StorageMemory:
		return storage.NewMemory(), nopCloser{}, nil

	case cliparse.StorageSQLite, cliparse.StoragePostgres:
		conn, err := db.Open(cfg.StorageType, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("schema creation failed: %w", err)
		}
		return storage.NewSQL(conn), conn, nil

	case cliparse.StorageRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rdb, err := storage.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(rdb), rdb, nil
	}

	return nil, nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
}
