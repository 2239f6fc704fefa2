package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/brew-review/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Executor runs a parameterised statement against the relational store.
// Arguments are bound positionally; values are never interpolated into the
// statement text. *sql.DB, *sql.Tx and [*DB] all satisfy it.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// UserRepository persists and looks up review app users.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ReviewRepository persists and looks up brewery reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) error
	FindReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
}

// ErrorClassificator decides whether a failed database operation is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
