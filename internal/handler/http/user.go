package http

import (
	"net/http"

	"github.com/MKhiriev/brew-review/models"
)

// getUser handles GET /user?userEmail=...
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	request := models.UserLookupRequest{
		UserEmail: r.URL.Query().Get("userEmail"),
	}

	user, err := h.services.UserService.GetUser(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, opRead)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}

// registerUser handles POST /user?userEmail=...&userName=...
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := models.UserRegisterRequest{
		UserEmail: query.Get("userEmail"),
		UserName:  query.Get("userName"),
	}

	if err := h.services.UserService.RegisterUser(r.Context(), request); err != nil {
		h.writeError(w, r, err, opInsert)
		return
	}

	writeText(w, r, http.StatusCreated, msgUserInserted)
}
