package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathishpadman/stockpulse/internal/common"
)

func TestRecoveryMiddlewareCatchesPanic(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := applyMiddleware(panicky, common.NewSilentLogger())

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestServer(&stubReports{}, &stubSignals{}, &stubAgent{})

	rec := doRequest(t, handler, http.MethodOptions, "/api/reports/daily", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestCorrelationIDGenerated(t *testing.T) {
	handler := newTestServer(&stubReports{}, &stubSignals{}, &stubAgent{})

	rec := doRequest(t, handler, http.MethodGet, "/api/health", "")
	assert.Len(t, rec.Header().Get("X-Correlation-ID"), 8)
}

func TestCorrelationIDPropagated(t *testing.T) {
	handler := newTestServer(&stubReports{}, &stubSignals{}, &stubAgent{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-12345")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-12345", rec.Header().Get("X-Correlation-ID"))
}
