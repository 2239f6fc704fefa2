package http

import (
	"net/http"

	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/utils"
)

// writeText is the only writer of plain-text bodies, for handler errors and
// routing errors alike.
func writeText(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if _, err := utils.WriteText(w, msg, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// withCORS adds the cross-origin headers to every response, errors included.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, http.StatusNotFound, msgInvalidURL)
}
