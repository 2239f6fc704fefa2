package service

import (
	"github.com/MKhiriev/brew-review/internal/config"
	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/store"
)

type Services struct {
	UserService   UserService
	ReviewService ReviewService
	HealthService HealthService
}

// NewServices builds the services with their validation wrappers applied.
func NewServices(storages *store.Storages, pinger store.Pinger, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserService:   NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		ReviewService: NewReviewValidationService().Wrap(NewReviewService(storages.ReviewRepository, logger)),
		HealthService: NewHealthService(pinger, cfg, logger),
	}
}
