package service

import (
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library/cache"
	"library/logger"
	"library/models"
)

const (
	RequestNumberKey = "requestNumber"
	RequestIdKey     = "requestId"
	RequestIdHeader  = "X-Request-ID"
)

// RequestTracker numbers every incoming request, logs its arrival and duration,
// and records it in the activity cache.
type RequestTracker struct {
	counter atomic.Int64
	log     logger.Logger
	cacher  cache.RequestCacher
}

func NewRequestTracker(registry *logger.Registry, cacher cache.RequestCacher) *RequestTracker {
	return &RequestTracker{log: registry.Requests(), cacher: cacher}
}

func (tracker *RequestTracker) Track(c *gin.Context) {
	start := time.Now()
	number := tracker.counter.Add(1)
	requestId := uuid.NewString()

	c.Set(RequestNumberKey, number)
	c.Set(RequestIdKey, requestId)
	c.Header(RequestIdHeader, requestId)

	tracker.log.Info().
		Int64(logger.RequestField, number).
		Str(logger.RequestIdField, requestId).
		Msgf("Incoming request | #%d | resource: %s | HTTP Verb %s", number, c.Request.URL.Path, c.Request.Method)

	c.Next()

	duration := time.Since(start)
	tracker.log.Debug().
		Int64(logger.RequestField, number).
		Str(logger.RequestIdField, requestId).
		Msgf("request #%d duration: %dms", number, duration.Milliseconds())

	record := models.RequestRecord{
		Number:     number,
		RequestId:  requestId,
		Method:     c.Request.Method,
		Route:      c.Request.URL.Path,
		Status:     c.Writer.Status(),
		DurationMs: duration.Milliseconds(),
	}

	// Not failing a request if there's a problem caching it
	if err := tracker.cacher.Write(record); err != nil {
		tracker.log.Warn().Err(err).Int64(logger.RequestField, number).Msg("Failed to cache request")
	}
}
