package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/store"
	"github.com/MKhiriev/brew-review/internal/validators"
	"github.com/MKhiriev/brew-review/models"
)

type reviewService struct {
	reviewRepository store.ReviewRepository

	logger *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

func (s *reviewService) GetReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	if filter.ByEmail() {
		// email takes precedence; the brewery id is ignored
		filter.BreweryID = ""
	}

	return s.reviewRepository.FindReviews(ctx, filter)
}

func (s *reviewService) AddReview(ctx context.Context, request models.ReviewCreateRequest) error {
	stars, err := validators.ParseStars(request.Stars)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReviewFieldsRequired, err)
	}

	return s.reviewRepository.CreateReview(ctx, models.Review{
		BreweryId:     request.BreweryID,
		BreweryName:   request.BreweryName,
		Stars:         stars,
		Email:         request.Email,
		ReviewComment: request.ReviewComment,
	})
}
