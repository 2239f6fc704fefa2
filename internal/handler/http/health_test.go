package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/brew-review/internal/service"
	"github.com/MKhiriev/brew-review/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.health.EXPECT().Check(gomock.Any()).Return(models.HealthStatus{Status: "ok", Version: "1.2.0"}, nil)

		rec := serve(http.HandlerFunc(h.health), http.MethodGet, "/healthz")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","version":"1.2.0"}`, rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.health.EXPECT().Check(gomock.Any()).
			Return(models.HealthStatus{Status: "unavailable"}, service.ErrDatabaseUnavailable)

		rec := serve(http.HandlerFunc(h.health), http.MethodGet, "/healthz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
	})
}
