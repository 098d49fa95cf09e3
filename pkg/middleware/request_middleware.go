package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	RequestIDHeader     = "X-Request-Id"
	RequestIDContextKey = "request_id"
)

type RequestMiddleware interface {
	RequestID() gin.HandlerFunc
	RecordMetrics() gin.HandlerFunc
}

type requestMiddleware struct {
	requests *prometheus.CounterVec
}

// RequestID keeps an incoming X-Request-Id or generates one, and echoes it on the response.
func (r *requestMiddleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// RecordMetrics counts requests by route pattern and status. requests must carry the labels route and status.
func (r *requestMiddleware) RecordMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func NewRequestMiddleware(requests *prometheus.CounterVec) RequestMiddleware {
	return &requestMiddleware{
		requests: requests,
	}
}
