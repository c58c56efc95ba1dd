package handler

import (
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/handler/http"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/metrics"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, cfg, logger),
	}, nil
}
