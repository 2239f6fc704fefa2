package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// presence
	ErrEmptyUserEmail     = errors.New("userEmail is empty")
	ErrEmptyReviewFilter  = errors.New("neither email nor brewery id is set")
	ErrEmptyStars         = errors.New("stars is empty")
	ErrEmptyReviewComment = errors.New("review comment is empty")
	ErrEmptyEmail         = errors.New("email is empty")
	ErrEmptyBreweryID     = errors.New("brewery id is empty")
	ErrEmptyBreweryName   = errors.New("brewery name is empty")

	// value
	ErrStarsNotInteger = errors.New("stars does not start with an integer")
	ErrZeroStars       = errors.New("stars cannot be zero")
)
