package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecommerce-backend/internal/errors"
)

// ErrorMonitor is the sink for unexpected failures. Only 5xx-class errors
// ever reach it; validation and business failures are not reported.
type ErrorMonitor struct {
	errorCounts map[errors.ErrorCode]int
	mu          sync.RWMutex
}

func NewErrorMonitor() *ErrorMonitor {
	return &ErrorMonitor{
		errorCounts: make(map[errors.ErrorCode]int),
	}
}

func (m *ErrorMonitor) RecordError(err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		m.mu.Lock()
		m.errorCounts[appErr.Code]++
		m.mu.Unlock()
	}
}

// GetErrorCounts returns a snapshot of recorded error counts per code.
func (m *ErrorMonitor) GetErrorCounts() map[errors.ErrorCode]int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[errors.ErrorCode]int, len(m.errorCounts))
	for code, count := range m.errorCounts {
		counts[code] = count
	}
	return counts
}

// ErrorMonitorMiddleware forwards errors attached to the gin context to the
// monitor. HandleError only attaches 5xx-class errors, so 4xx failures never
// hit the sink.
func ErrorMonitorMiddleware(monitor *ErrorMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			monitor.RecordError(e.Err)
			if appErr, ok := e.Err.(*errors.AppError); ok {
				zap.L().Error("request failed",
					zap.Int("error_code", int(appErr.Code)),
					zap.String("message_key", appErr.MessageKey),
					zap.Error(appErr.Err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method))
			}
		}
	}
}
