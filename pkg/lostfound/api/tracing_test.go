package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSpanName(t *testing.T) {
	tests := []struct {
		method string
		route  string
		want   string
	}{
		{"GET", "/api/inventory", "GET /api/inventory"},
		{"PUT", "/api/mark-claimed/{id}", "PUT /api/mark-claimed/{id}"},
		{"POST", "/api/found-discs", "POST /api/found-discs"},
	}
	for _, tt := range tests {
		if got := spanName(tt.method, tt.route); got != tt.want {
			t.Errorf("spanName(%q, %q) = %q, want %q", tt.method, tt.route, got, tt.want)
		}
	}
}

func TestRequestTracingPassthrough(t *testing.T) {
	var sawRequest bool
	h := requestTracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawRequest = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory", nil))

	if !sawRequest {
		t.Fatal("expected wrapped handler to run")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rec.Code)
	}
}
