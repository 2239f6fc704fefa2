// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/brew-review/models"
)

func validCreateRequest() models.ReviewCreateRequest {
	return models.ReviewCreateRequest{
		Stars:         "5",
		ReviewComment: "Great",
		Email:         "a@b.com",
		BreweryID:     "42",
		BreweryName:   "Acme",
	}
}

func TestNewReviewValidator(t *testing.T) {
	require.NotNil(t, NewReviewValidator())
}

func TestReviewValidator_UnsupportedType(t *testing.T) {
	err := NewReviewValidator().Validate(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestReviewValidator_Filter(t *testing.T) {
	tests := []struct {
		name    string
		filter  models.ReviewFilter
		wantErr error
	}{
		{name: "email only", filter: models.ReviewFilter{Email: "a@b.com"}},
		{name: "brewery only", filter: models.ReviewFilter{BreweryID: "42"}},
		{name: "both", filter: models.ReviewFilter{Email: "a@b.com", BreweryID: "42"}},
		{name: "neither", filter: models.ReviewFilter{}, wantErr: ErrEmptyReviewFilter},
	}

	v := NewReviewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.filter)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form dispatches identically
			assert.ErrorIs(t, v.Validate(context.Background(), &tt.filter), tt.wantErr)
		})
	}
}

func TestReviewValidator_CreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.ReviewCreateRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.ReviewCreateRequest) {}},
		{name: "negative stars pass", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "-3" }},
		{name: "stars above five pass", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "11" }},
		{name: "missing stars", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "" }, wantErr: ErrEmptyStars},
		{name: "non integer stars", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "five" }, wantErr: ErrStarsNotInteger},
		{name: "letters only", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "abc" }, wantErr: ErrStarsNotInteger},
		{name: "fractional stars use the integer part", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "4.5" }},
		{name: "trailing garbage is ignored", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "5abc" }},
		{name: "leading space is skipped", mutate: func(r *models.ReviewCreateRequest) { r.Stars = " 5" }},
		{name: "fraction below one is zero", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "0.9" }, wantErr: ErrZeroStars},
		// zero is indistinguishable from missing; kept until product decides otherwise
		{name: "zero stars", mutate: func(r *models.ReviewCreateRequest) { r.Stars = "0" }, wantErr: ErrZeroStars},
		{name: "missing comment", mutate: func(r *models.ReviewCreateRequest) { r.ReviewComment = "" }, wantErr: ErrEmptyReviewComment},
		{name: "missing email", mutate: func(r *models.ReviewCreateRequest) { r.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "missing brewery id", mutate: func(r *models.ReviewCreateRequest) { r.BreweryID = "" }, wantErr: ErrEmptyBreweryID},
		{name: "missing brewery name", mutate: func(r *models.ReviewCreateRequest) { r.BreweryName = "" }, wantErr: ErrEmptyBreweryName},
	}

	v := NewReviewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validCreateRequest()
			tt.mutate(&request)

			err := v.Validate(context.Background(), request)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewValidator_CreateRequest_FieldScoping(t *testing.T) {
	request := models.ReviewCreateRequest{Stars: "5"}
	v := NewReviewValidator()

	assert.NoError(t, v.Validate(context.Background(), &request, FieldStars))
	assert.ErrorIs(t, v.Validate(context.Background(), &request, FieldStars, FieldEmail), ErrEmptyEmail)
}

func TestReviewValidator_UnknownField(t *testing.T) {
	err := NewReviewValidator().Validate(context.Background(), validCreateRequest(), "rating")

	assert.ErrorIs(t, err, ErrUnknownField)
}
