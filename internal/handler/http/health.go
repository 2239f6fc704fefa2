package http

import "net/http"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, status)
		return
	}

	writeJSON(w, r, http.StatusOK, status)
}
