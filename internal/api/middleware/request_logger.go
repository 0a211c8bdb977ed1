package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDKey = "request_id"
	// SessionIDKey is set by interview handlers once the session id is known.
	SessionIDKey = "session_id"
)

// RequestLogger logs one line per request, tagged with X-Request-Id and, on
// interview routes, the interview session id.
func RequestLogger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-Id", reqID)
		c.Set(RequestIDKey, reqID)

		c.Next()

		status := c.Writer.Status()
		entry := l.WithFields(requestFields(c, reqID, time.Since(start)))

		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}

func requestFields(c *gin.Context, reqID string, latency time.Duration) logrus.Fields {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}

	f := logrus.Fields{
		"request_id": reqID,
		"method":     c.Request.Method,
		"path":       path,
		"status":     c.Writer.Status(),
		"latency_ms": latency.Milliseconds(),
		"ip":         c.ClientIP(),
	}

	sid := c.GetString(SessionIDKey)
	if sid == "" {
		sid = c.Param("sessionId")
	}
	if sid != "" {
		f[SessionIDKey] = sid
	}

	if len(c.Errors) > 0 {
		f["errors"] = c.Errors.String()
	}
	return f
}
