// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// RequestIDKey is the context key for the request's correlation ID.
	RequestIDKey ContextKey = "request_id"
	// RequestIDHeader is the header carrying the correlation ID.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength bounds client-supplied IDs echoed back in responses.
	maxRequestIDLength = 128
)

// RequestID returns a Gin middleware handler that tags every request with a correlation ID.
// A client-supplied X-Request-ID is reused, otherwise a new UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestIDFromContext extracts the request ID from the Gin context.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(string(RequestIDKey))
	if !exists {
		return "", false
	}
	id, ok := requestID.(string)
	return id, ok
}
