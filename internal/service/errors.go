package service

import "errors"

// Client input errors. Each wraps the validators error that caused it.
var (
	ErrUserEmailRequired    = errors.New("userEmail is required")
	ErrReviewFilterRequired = errors.New("email or brewery id is required")
	ErrReviewFieldsRequired = errors.New("stars, review comment, email, brewery id and brewery name are required")
)

var ErrDatabaseUnavailable = errors.New("database is unavailable")
