package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	existing := uuid.NewString()

	testCases := []struct {
		name        string
		header      string
		expectReuse bool
	}{
		{name: "Generates id when header missing"},
		{name: "Keeps valid incoming id", header: existing, expectReuse: true},
		{name: "Replaces malformed incoming id", header: "not-a-uuid"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			m := NewRequestMiddleware(newRequestCounter())
			var seen string
			r.GET("/test", m.RequestID(), func(c *gin.Context) {
				seen = c.GetString(RequestIDContextKey)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/test", nil)
			require.NoError(t, err)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
			_, err = uuid.Parse(seen)
			assert.NoError(t, err)
			if tc.expectReuse {
				assert.Equal(t, existing, seen)
			} else {
				assert.NotEqual(t, tc.header, seen)
			}
		})
	}
}

func TestRequestMiddleware_RecordMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	counter := newRequestCounter()
	m := NewRequestMiddleware(counter)
	r.Use(m.RecordMetrics())
	r.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for _, path := range []string{"/ok", "/missing"} {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(counter.WithLabelValues("/ok", "204")))
	assert.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("unmatched", "404")))
}

func newRequestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "test_http_requests_total",
		Help: "test counter",
	}, []string{"route", "status"})
}
