package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/brew-review/internal/logger"
)

// newMockDB returns a *DB over sqlmock. Expectations are verified on cleanup.
func newMockDB(t *testing.T, placeholder sq.PlaceholderFormat) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	return &DB{
		DB:                 conn,
		driver:             "pgx",
		placeholder:        placeholder,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}
