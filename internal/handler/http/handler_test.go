package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/brew-review/internal/config"
	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/mock"
	"github.com/MKhiriev/brew-review/internal/service"
	"github.com/MKhiriev/brew-review/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	users   *mock.MockUserService
	reviews *mock.MockReviewService
	health  *mock.MockHealthService
}

func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		users:   mock.NewMockUserService(ctrl),
		reviews: mock.NewMockReviewService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			UserService:   m.users,
			ReviewService: m.reviews,
			HealthService: m.health,
		},
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger.Nop(),
	}

	return h, m
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: 3 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
