// Package validation provides input validation middleware for the SmartShield API.
package validation

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxRequestSize is the maximum request body size (1MB)
const MaxRequestSize = 1 << 20 // 1MB

// RequestSizeMiddleware limits request body size
func RequestSizeMiddleware(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// SanitizeString trims whitespace and strips null bytes. Postgres TEXT
// columns reject null bytes, so they must never reach the store. Length is
// deliberately not limited here: a scanned payload is opaque data and
// truncating it would change its classification. RequestSizeMiddleware
// already bounds the transport.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, "\x00", "")
}
