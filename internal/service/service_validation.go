package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brew-review/internal/validators"
	"github.com/MKhiriev/brew-review/models"
)

// UserValidationService checks lookup requests before handing them to the
// wrapped UserService. Registration passes through unchecked.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) GetUser(ctx context.Context, request models.UserLookupRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserEmailRequired, err)
	}

	return v.inner.GetUser(ctx, request)
}

func (v *UserValidationService) RegisterUser(ctx context.Context, request models.UserRegisterRequest) error {
	return v.inner.RegisterUser(ctx, request)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// ReviewValidationService checks review filters and submissions before
// handing them to the wrapped ReviewService.
type ReviewValidationService struct {
	inner     ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{
		validator: validators.NewReviewValidator(),
	}
}

func (v *ReviewValidationService) GetReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReviewFilterRequired, err)
	}

	return v.inner.GetReviews(ctx, filter)
}

func (v *ReviewValidationService) AddReview(ctx context.Context, request models.ReviewCreateRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrReviewFieldsRequired, err)
	}

	return v.inner.AddReview(ctx, request)
}

func (v *ReviewValidationService) Wrap(wrapped ReviewService) ReviewService {
	v.inner = wrapped
	return v
}
