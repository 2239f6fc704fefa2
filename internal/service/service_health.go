package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brew-review/internal/config"
	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/store"
	"github.com/MKhiriev/brew-review/models"
)

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

type healthService struct {
	pinger     store.Pinger
	appVersion string

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:     pinger,
		appVersion: cfg.Version,
		logger:     logger,
	}
}

// Check pings the database. On failure the returned status is still
// populated and the error wraps [ErrDatabaseUnavailable].
func (s *healthService) Check(ctx context.Context) (models.HealthStatus, error) {
	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Check").Msg("database ping failed")
		return models.HealthStatus{Status: StatusUnavailable}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return models.HealthStatus{Status: StatusOK, Version: s.appVersion}, nil
}
