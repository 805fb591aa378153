package handlers

import (
	"net/http"
	"time"

	"github.com/apickard/discbin/pkg/lostfound/store"
)

// HealthResponse is a health probe response.
type HealthResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	InstanceID string    `json:"instanceId,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store      store.DiscStore
	instanceID string
}

// NewHealthHandler creates a new HealthHandler.
// instanceID identifies this server process in probe responses.
func NewHealthHandler(s store.DiscStore, instanceID string) *HealthHandler {
	return &HealthHandler{
		store:      s,
		instanceID: instanceID,
	}
}

// Liveness handles GET /health.
// Reports that the process is up; it does not touch the database.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	WriteJSONOK(w, HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		InstanceID: h.instanceID,
	})
}

// Readiness handles GET /health/ready.
// Reports 503 until the database answers a ping.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:     "unhealthy",
			Timestamp:  time.Now().UTC(),
			InstanceID: h.instanceID,
			Error:      err.Error(),
		})
		return
	}

	WriteJSONOK(w, HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		InstanceID: h.instanceID,
	})
}
