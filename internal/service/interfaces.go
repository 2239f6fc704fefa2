package service

import (
	"context"

	"github.com/MKhiriev/brew-review/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService registers review app users and looks them up by email.
type UserService interface {
	GetUser(ctx context.Context, request models.UserLookupRequest) (models.User, error)
	RegisterUser(ctx context.Context, request models.UserRegisterRequest) error
}

// ReviewService records brewery reviews and lists them by author or brewery.
type ReviewService interface {
	GetReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
	AddReview(ctx context.Context, request models.ReviewCreateRequest) error
}

// HealthService reports whether the service can reach its database.
type HealthService interface {
	Check(ctx context.Context) (models.HealthStatus, error)
}
