package http

import (
	"net/http"

	"github.com/MKhiriev/brew-review/models"
)

// getReviews handles GET /reviews?userEmail=... or GET /reviews?breweryId=...
// An empty result is 200 with [].
func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.ReviewFilter{
		Email:     query.Get("userEmail"),
		BreweryID: query.Get("breweryId"),
	}

	reviews, err := h.services.ReviewService.GetReviews(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err, opRead)
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}

	writeJSON(w, r, http.StatusOK, reviews)
}

// addReview handles POST /reviews with stars, reviewComment, email,
// breweryId and breweryName query parameters.
func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := models.ReviewCreateRequest{
		Stars:         query.Get("stars"),
		ReviewComment: query.Get("reviewComment"),
		Email:         query.Get("email"),
		BreweryID:     query.Get("breweryId"),
		BreweryName:   query.Get("breweryName"),
	}

	if err := h.services.ReviewService.AddReview(r.Context(), request); err != nil {
		h.writeError(w, r, err, opInsert)
		return
	}

	writeText(w, r, http.StatusOK, msgReviewAdded)
}
