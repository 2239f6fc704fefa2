package validators

import (
	"context"

	"github.com/MKhiriev/brew-review/models"
)

// Field name constants for [ReviewValidator]. They are passed to Validate to
// restrict validation to a subset of fields.
const (
	// FieldReviewFilter requires at least one of email or brewery id.
	FieldReviewFilter = "review_filter"

	// FieldStars checks presence, a leading integer and the non-zero rule, in that order.
	FieldStars = "stars"

	FieldReviewComment = "review_comment"
	FieldEmail         = "email"
	FieldBreweryID     = "brewery_id"
	FieldBreweryName   = "brewery_name"
)

// ReviewValidator validates review lookups and review submissions.
type ReviewValidator struct {
}

func NewReviewValidator() Validator {
	return &ReviewValidator{}
}

func (v *ReviewValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReviewFilter:
		return v.validateFilter(ctx, value, fields...)
	case *models.ReviewFilter:
		return v.validateFilter(ctx, *value, fields...)

	case models.ReviewCreateRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.ReviewCreateRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ReviewValidator) validateFilter(_ context.Context, filter models.ReviewFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReviewFilter}
	}

	for _, f := range fields {
		switch f {
		case FieldReviewFilter:
			if filter.Email == "" && filter.BreweryID == "" {
				return ErrEmptyReviewFilter
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReviewValidator) validateCreateRequest(_ context.Context, request models.ReviewCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStars, FieldReviewComment, FieldEmail, FieldBreweryID, FieldBreweryName}
	}

	for _, f := range fields {
		switch f {
		case FieldStars:
			if err := validateStars(request.Stars); err != nil {
				return err
			}
		case FieldReviewComment:
			if request.ReviewComment == "" {
				return ErrEmptyReviewComment
			}
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
		case FieldBreweryID:
			if request.BreweryID == "" {
				return ErrEmptyBreweryID
			}
		case FieldBreweryName:
			if request.BreweryName == "" {
				return ErrEmptyBreweryName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateStars keeps the historical rule that zero stars counts as missing.
// There is no 1..5 range check; negative values pass.
func validateStars(raw string) error {
	if raw == "" {
		return ErrEmptyStars
	}

	stars, err := ParseStars(raw)
	if err != nil {
		return err
	}

	if stars == 0 {
		return ErrZeroStars
	}

	return nil
}
