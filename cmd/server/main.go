package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/handler"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/metrics"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/server"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const connectTimeout = 10 * time.Second

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("blog-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("blog-server", cfg.App.LogLevel)
	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	storages, err := store.NewStorages(db, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, metrics.New(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	log.Info().Msg("server stopped")

	return nil
}
