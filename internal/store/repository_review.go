package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/models"
)

type reviewRepository struct {
	exec       Executor
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
	logger     *logger.Logger
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		exec:       db,
		builder:    db.Builder(),
		classifier: db.errorClassificator,
		logger:     logger,
	}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateReviewQuery(r.builder, review)
	if err != nil {
		log.Err(err).Str("func", "reviewRepository.CreateReview").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.exec.ExecContext(ctx, query, args...); err != nil {
		dbErrorEvent(log.Error(), r.classifier, err).
			Str("func", "reviewRepository.CreateReview").
			Str("brewery_id", review.BreweryId).
			Msg("failed to insert review")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindReviews returns every review matching filter. An empty result is a
// non-nil empty slice.
func (r *reviewRepository) FindReviews(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindReviewsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "reviewRepository.FindReviews").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		dbErrorEvent(log.Error(), r.classifier, err).
			Str("func", "reviewRepository.FindReviews").
			Bool("by_email", filter.ByEmail()).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 16)
	for rows.Next() {
		var review models.Review
		scanErr := rows.Scan(
			&review.BreweryId,
			&review.BreweryName,
			&review.Stars,
			&review.Email,
			&review.ReviewComment,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "reviewRepository.FindReviews").Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		reviews = append(reviews, review)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "reviewRepository.FindReviews").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reviews, nil
}
