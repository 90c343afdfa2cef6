package utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorLogWriter struct {
	gin.ResponseWriter
	gc        *gin.Context
	requestID string
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("[%s] %s %s: status %d, body: %s",
			w.requestID, w.gc.Request.Method, w.gc.Request.URL.Path, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware logs the response body of failed requests, tagged with a
// per-request id so interleaved failures can be told apart.
// Doesn't work with GZIP.
func ErrorLogMiddleware(c *gin.Context) {
	requestID := uuid.NewString()[:8]
	c.Header("X-Request-Id", requestID)
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer, requestID: requestID}
	c.Writer = blw
	c.Next()
}

// NoCache keeps browsers from replaying protected pages after logout.
func NoCache(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Next()
}
