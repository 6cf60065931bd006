package api

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/dayledger/internal/app"
	"github.com/terraincognita07/dayledger/internal/models"
)

func NewHandler(container *app.Services, options HandlerOptions, logger zerolog.Logger) *Handler {
	handler := &Handler{
		services:     container,
		defaultOwner: strings.TrimSpace(options.DefaultOwner),
		authSecret:   options.AuthSecret,
		logger:       logger.With().Str("component", "api").Logger(),
		metrics:      options.Metrics,
	}
	return handler.ensureDependencies()
}

func (handler *Handler) ensureDependencies() *Handler {
	if handler.defaultOwner == "" {
		handler.defaultOwner = models.DefaultOwnerID
	}
	if handler.location == nil && handler.services != nil {
		handler.location = handler.services.Location
	}
	if handler.location == nil {
		handler.location = time.UTC
	}
	if handler.now == nil {
		handler.now = time.Now
	}
	return handler
}
