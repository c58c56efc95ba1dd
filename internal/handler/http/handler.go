package http

import (
	"time"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/metrics"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	requestTimeout     time.Duration
	corsAllowedOrigins []string
	maxUploadSize      int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		metrics:            metrics,
		requestTimeout:     cfg.RequestTimeout,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		maxUploadSize:      cfg.MaxUploadSize,
		logger:             logger,
	}
}
