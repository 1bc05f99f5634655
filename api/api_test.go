package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/report-nui/api"
)

func TestHealthCheckHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	api.New().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive": true}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	api.RecordReport(api.OutcomeCreated)
	api.RecordNotification("openReport")

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	api.New().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `report_host_reports_total{outcome="created"}`)
	assert.Contains(t, rr.Body.String(), `report_host_notifications_total{action="openReport"}`)
}

func TestMetricsMiddleware(t *testing.T) {
	r := api.New()
	var seenID string
	r.Use(api.MetricsMiddleware)
	r.HandleFunc("/nui/{name}", func(w http.ResponseWriter, r *http.Request) {
		seenID = api.RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req, _ := http.NewRequest("POST", "/nui/submitReport", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rr.Header().Get("X-Request-Id"))

	req, _ = http.NewRequest("GET", "/metrics", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Contains(t, rr.Body.String(), `endpoint="/nui/{name}",method="POST",status="418"`)
}

func TestTimeoutMiddleware(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})
	h := api.TimeoutMiddleware(20 * time.Millisecond)(slow)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/nui/requestPlayerData", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "Request timeout"))

	fast := api.TimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	rr = httptest.NewRecorder()
	fast.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, api.RequestID(context.Background()))
	assert.Equal(t, "abc", api.RequestID(api.WithRequestID(context.Background(), "abc")))

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}
