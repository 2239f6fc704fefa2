// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/brew-review/models"
)

func Test_buildFindReviewsQuery(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		filter    models.ReviewFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "by brewery, sqlite placeholders",
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
			filter:    models.ReviewFilter{BreweryID: "42"},
			wantQuery: "SELECT BreweryId, BreweryName, Stars, Email, ReviewComment FROM BreweryReviews WHERE BreweryId = ?",
			wantArgs:  []any{"42"},
		},
		{
			name:      "by email, postgres placeholders",
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			filter:    models.ReviewFilter{Email: "a@b.com"},
			wantQuery: "SELECT BreweryId, BreweryName, Stars, Email, ReviewComment FROM BreweryReviews WHERE Email = $1",
			wantArgs:  []any{"a@b.com"},
		},
		{
			name:      "email wins over brewery",
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			filter:    models.ReviewFilter{Email: "a@b.com", BreweryID: "42"},
			wantQuery: "SELECT BreweryId, BreweryName, Stars, Email, ReviewComment FROM BreweryReviews WHERE Email = $1",
			wantArgs:  []any{"a@b.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindReviewsQuery(tt.builder, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildFindUserByEmailQuery_LimitsToOneRow(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "john@example.com")

	require.NoError(t, err)
	assert.Equal(t, "SELECT UserName, UserEmail, RegistrationDate FROM reviewAppUsers WHERE UserEmail = $1 LIMIT 1", query)
	assert.Equal(t, []any{"john@example.com"}, args)
}

func Test_buildInsertQueries_BindValues(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	now := time.Now().UTC()

	query, args, err := buildCreateUserQuery(b, models.User{UserName: "n'; DROP TABLE x; --", UserEmail: "e", RegistrationDate: now})
	require.NoError(t, err)
	assert.NotContains(t, query, "DROP TABLE")
	assert.Equal(t, []any{"n'; DROP TABLE x; --", "e", now}, args)

	query, args, err = buildCreateReviewQuery(b, models.Review{BreweryId: "42", BreweryName: "Acme", Stars: 5, Email: "a@b.com", ReviewComment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO BreweryReviews (BreweryId,BreweryName,Stars,Email,ReviewComment) VALUES (?,?,?,?,?)", query)
	assert.Equal(t, []any{"42", "Acme", 5, "a@b.com", "Great"}, args)
}
