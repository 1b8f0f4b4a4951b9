package http

import (
	"time"

	"github.com/MKhiriev/go-film-catalog/internal/config"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	cookieSecure   bool

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. cfg may be nil in tests, in which case
// no request timeout is applied and the session cookie is not marked Secure.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if cfg != nil {
		h.requestTimeout = cfg.Server.RequestTimeout
		h.cookieSecure = cfg.App.CookieSecure
	}
	return h
}
