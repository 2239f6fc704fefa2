package http

import (
	"time"

	"github.com/MKhiriev/brew-review/internal/config"
	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/service"
	"github.com/MKhiriev/brew-review/internal/utils"
)

type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	traceIDs       traceIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
