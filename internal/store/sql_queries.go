package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brew-review/models"
)

var (
	userColumns   = []string{"UserName", "UserEmail", "RegistrationDate"}
	reviewColumns = []string{"BreweryId", "BreweryName", "Stars", "Email", "ReviewComment"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.UserName, user.UserEmail, user.RegistrationDate).
		ToSql()
}

// buildFindUserByEmailQuery selects at most one row; duplicates beyond the
// first are never read.
func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"UserEmail": email}).
		Limit(1).
		ToSql()
}

func buildCreateReviewQuery(b sq.StatementBuilderType, review models.Review) (string, []any, error) {
	return b.
		Insert(models.Review{}.TableName()).
		Columns(reviewColumns...).
		Values(review.BreweryId, review.BreweryName, review.Stars, review.Email, review.ReviewComment).
		ToSql()
}

// buildFindReviewsQuery filters on Email when the filter carries one,
// otherwise on BreweryId.
func buildFindReviewsQuery(b sq.StatementBuilderType, filter models.ReviewFilter) (string, []any, error) {
	where := sq.Eq{"BreweryId": filter.BreweryID}
	if filter.ByEmail() {
		where = sq.Eq{"Email": filter.Email}
	}

	return b.
		Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(where).
		ToSql()
}
