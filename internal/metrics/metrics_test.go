package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/v1/holidays/{year}", http.StatusOK, 3*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/holidays/{year}", http.StatusOK, 2*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `ethiocal_http_requests_total{method="GET",route="/api/v1/holidays/{year}",status="200"} 2`)
	assert.Contains(t, body, `ethiocal_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `ethiocal_http_request_duration_seconds_count{method="GET",route="/api/v1/holidays/{year}"} 2`)
}

func TestHandler(t *testing.T) {
	m := New()
	m.HolidayLookups.WithLabelValues("year").Inc()
	m.CalendarErrors.WithLabelValues("INVALID_INPUT_TYPE").Inc()

	body := scrape(t, m)
	assert.Contains(t, body, `ethiocal_holiday_lookups_total{scope="year"} 1`)
	assert.Contains(t, body, `ethiocal_calendar_errors_total{code="INVALID_INPUT_TYPE"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()
	a.Conversions.WithLabelValues("to_gregorian").Inc()

	assert.Contains(t, scrape(t, a), `ethiocal_conversions_total{direction="to_gregorian"} 1`)
	assert.NotContains(t, scrape(t, b), "ethiocal_conversions_total")
}
