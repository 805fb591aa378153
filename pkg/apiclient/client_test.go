package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apickard/discbin/pkg/lostfound/models"
)

func TestClient_Inventory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/inventory" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.FoundDisc{
			{ID: 1, Course: "Maple Hill", Status: models.StatusPendingText},
			{ID: 2, Course: "Pyramids", Status: models.StatusTexted},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	discs, err := client.Inventory(context.Background())
	if err != nil {
		t.Fatalf("Inventory failed: %v", err)
	}
	if len(discs) != 2 {
		t.Fatalf("expected 2 discs, got %d", len(discs))
	}
	if discs[0].Course != "Maple Hill" {
		t.Errorf("course = %q, want Maple Hill", discs[0].Course)
	}
}

func TestClient_ReportFoundDisc(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/found-discs" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req ReportFoundDiscRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.PhoneNumber != "555-0142" {
			t.Errorf("phoneNumber = %q, want 555-0142", req.PhoneNumber)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.FoundDisc{
			ID:     7,
			Course: req.Course,
			Status: models.StatusPendingText,
		})
	}))
	defer server.Close()

	client := New(server.URL)
	disc, err := client.ReportFoundDisc(context.Background(), &ReportFoundDiscRequest{
		Course:      "Maple Hill",
		Name:        "Jo Barnes",
		Disc:        "Blue Innova Destroyer",
		PhoneNumber: "555-0142",
		Bin:         "A3",
	})
	if err != nil {
		t.Fatalf("ReportFoundDisc failed: %v", err)
	}
	if disc.ID != 7 {
		t.Errorf("id = %d, want 7", disc.ID)
	}
}

func TestClient_MarkClaimed_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"about:blank","title":"Not Found","status":404,"detail":"No found disc with id 99"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.MarkClaimed(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("expected not-found error, got status %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "No found disc with id 99" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}

func TestClient_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Health(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", apiErr.StatusCode)
	}
	if apiErr.Detail != "upstream exploded" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}
