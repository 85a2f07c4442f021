package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(formSubmissionsTotal.WithLabelValues("review", OutcomeInvalid))

	RecordSubmission("review", OutcomeInvalid)
	RecordSubmission("review", OutcomeInvalid)

	after := testutil.ToFloat64(formSubmissionsTotal.WithLabelValues("review", OutcomeInvalid))
	assert.Equal(t, before+2, after)
}

func TestRecordStorageOpSplitsStatus(t *testing.T) {
	okBefore := testutil.ToFloat64(storageOperationsTotal.WithLabelValues("contacts.json", "write", "success"))
	errBefore := testutil.ToFloat64(storageOperationsTotal.WithLabelValues("contacts.json", "write", "error"))

	RecordStorageOp("contacts.json", "write", time.Millisecond, nil)
	RecordStorageOp("contacts.json", "write", time.Millisecond, errors.New("disk full"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(storageOperationsTotal.WithLabelValues("contacts.json", "write", "success")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(storageOperationsTotal.WithLabelValues("contacts.json", "write", "error")))
}

func TestPrometheusMiddlewareCountsStatus(t *testing.T) {
	h := PrometheusMiddleware("/api/reviews")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/reviews", "201"))

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/reviews", "201")))
}

func TestPrometheusMiddlewareSkipsMetricsPath(t *testing.T) {
	called := false
	h := PrometheusMiddleware("/metrics")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.True(t, called)
	assert.Equal(t, before, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")))
}

func TestPrometheusMiddlewareCollapsesUnknownPaths(t *testing.T) {
	h := PrometheusMiddleware("/api/contact")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedEndpoint, "404"))
	series := testutil.CollectAndCount(httpRequestsTotal)
	for _, path := range []string{"/wp-login.php", "/api/contact/x1", "/.env"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedEndpoint, "404")))
	assert.Equal(t, series, testutil.CollectAndCount(httpRequestsTotal))
}
