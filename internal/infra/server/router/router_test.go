package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/password-meter/backend/internal/application/usecase/strength"
	"github.com/password-meter/backend/internal/integration/entrypoint/controller"
	"github.com/password-meter/backend/internal/integration/entrypoint/middleware"
)

func TestRouter_Setup(t *testing.T) {
	useCase := strength.NewEvaluatePasswordUseCase(nil)
	r := NewRouter(
		controller.NewHealthController(useCase.Canary),
		controller.NewStrengthController(useCase, 1024),
		controller.NewPageController("Meter", StrengthPath),
	)

	engine, err := r.Setup("test")
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	if r.Engine() != engine {
		t.Error("expected Engine to return the configured engine")
	}

	tests := []struct {
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodPost, StrengthPath, `{"password":"abc"}`, http.StatusOK},
		{http.MethodGet, StrengthPath, "", http.StatusNotFound},
		{http.MethodGet, "/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("expected X-Request-ID header on every response")
			}
		})
	}
}

func TestRouter_SetupWithoutOptionalControllers(t *testing.T) {
	r := NewRouter(controller.NewHealthController(nil), nil, nil)

	engine, err := r.Setup("test")
	if err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, StrengthPath, nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a strength controller, got %d", w.Code)
	}
}
