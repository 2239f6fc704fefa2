package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/models"
)

// userRepository is the database/sql implementation of [UserRepository]
// over the reviewAppUsers table.
//
// Every method runs exactly one statement and obtains a context-scoped logger
// via [logger.FromContext], so log lines carry the request trace id.
type userRepository struct {
	exec       Executor
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the shared pool.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		exec:       db,
		builder:    db.Builder(),
		classifier: db.errorClassificator,
		logger:     logger,
	}
}

// CreateUser inserts user as given. No uniqueness check is made on UserEmail.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.exec.ExecContext(ctx, query, args...); err != nil {
		dbErrorEvent(log.Error(), r.classifier, err).
			Str("func", "userRepository.CreateUser").
			Msg("failed to insert user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindUserByEmail returns the first user whose UserEmail equals email.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.builder, email)
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		dbErrorEvent(log.Error(), r.classifier, err).
			Str("func", "userRepository.FindUserByEmail").
			Msg("failed to execute query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("error occurred during rows iteration")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	if err = rows.Scan(&user.UserName, &user.UserEmail, &user.RegistrationDate); err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
