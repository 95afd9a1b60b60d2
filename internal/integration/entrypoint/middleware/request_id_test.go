package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newRequestIDEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		id, _ := GetRequestIDFromContext(c)
		c.String(http.StatusOK, id)
	})
	return engine
}

func TestRequestID(t *testing.T) {
	engine := newRequestIDEngine()

	t.Run("generates an ID when none is supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		header := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(header); err != nil {
			t.Fatalf("expected generated UUID, got %q", header)
		}
		if w.Body.String() != header {
			t.Errorf("expected context ID %q to match header, got %q", header, w.Body.String())
		}
	})

	t.Run("echoes a supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("expected echoed ID abc-123, got %q", got)
		}
	})

	t.Run("replaces an oversized ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
			t.Errorf("expected oversized ID to be replaced with a UUID, got %q", w.Header().Get(RequestIDHeader))
		}
	})
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := GetRequestIDFromContext(c); ok {
		t.Error("expected no request ID on a fresh context")
	}
}
