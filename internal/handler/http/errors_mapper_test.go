package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/brew-review/internal/service"
	"github.com/MKhiriev/brew-review/internal/store"
	"github.com/MKhiriev/brew-review/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		op         operation
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "wrapped email required",
			err:        fmt.Errorf("%w: %w", service.ErrUserEmailRequired, validators.ErrEmptyUserEmail),
			op:         opRead,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "userEmail is required",
		},
		{
			name:       "review filter required",
			err:        service.ErrReviewFilterRequired,
			op:         opRead,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Email or BreweryId is required",
		},
		{
			name:       "review fields required",
			err:        fmt.Errorf("%w: %w", service.ErrReviewFieldsRequired, validators.ErrZeroStars),
			op:         opInsert,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Stars, Review Comment, Email, BreweryId, and BreweryName are required",
		},
		{
			name:       "user not found",
			err:        fmt.Errorf("get user: %w", store.ErrUserNotFound),
			op:         opRead,
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "query past the request deadline",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded),
			op:         opRead,
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    "Request timed out",
		},
		{
			name:       "read failure",
			err:        errors.New("driver: bad connection"),
			op:         opRead,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Error reading data from the database",
		},
		{
			name:       "insert failure",
			err:        errors.New("driver: bad connection"),
			op:         opInsert,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Error inserting data into the database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err, tt.op)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
