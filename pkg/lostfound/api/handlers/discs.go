package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/apickard/discbin/internal/logger"
	"github.com/apickard/discbin/pkg/lostfound/models"
	"github.com/apickard/discbin/pkg/lostfound/store"
	"github.com/apickard/discbin/pkg/metrics"
)

// DiscHandler handles found-disc API endpoints.
type DiscHandler struct {
	store    store.DiscStore
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewDiscHandler creates a new DiscHandler.
// The metrics argument may be nil when metrics are disabled.
func NewDiscHandler(s store.DiscStore, m *metrics.Metrics) *DiscHandler {
	return &DiscHandler{
		store:    s,
		metrics:  m,
		validate: validator.New(),
	}
}

// CreateFoundDiscRequest is the request body for POST /api/found-discs.
//
// Status is not accepted from clients: every new record starts in the
// pending-text state regardless of what the request carries.
type CreateFoundDiscRequest struct {
	Course      string       `json:"course" validate:"required,max=255"`
	Name        string       `json:"name" validate:"required,max=255"`
	Disc        string       `json:"disc" validate:"required,max=255"`
	PhoneNumber string       `json:"phoneNumber" validate:"required,max=15"`
	Bin         string       `json:"bin" validate:"required,max=10"`
	DateFound   *models.Date `json:"dateFound,omitempty"`
	Comments    *string      `json:"comments,omitempty"`
}

// ClaimResponse is the response body for PUT /api/mark-claimed/{id}.
type ClaimResponse struct {
	Message string            `json:"message"`
	Disc    *models.FoundDisc `json:"disc"`
}

// Create handles POST /api/found-discs.
// Logs a newly found disc in the pending-text state.
func (h *DiscHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFoundDiscRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		BadRequest(w, validationDetail(err))
		return
	}

	dateFound := models.Today()
	if req.DateFound != nil && !req.DateFound.IsZero() {
		dateFound = *req.DateFound
	}

	disc := &models.FoundDisc{
		Course:      req.Course,
		Name:        req.Name,
		Disc:        req.Disc,
		PhoneNumber: req.PhoneNumber,
		Bin:         req.Bin,
		DateFound:   dateFound,
		Status:      models.StatusPendingText,
		Comments:    req.Comments,
	}

	if err := h.store.CreateDisc(r.Context(), disc); err != nil {
		if errors.Is(err, models.ErrInvalidDisc) {
			BadRequest(w, err.Error())
			return
		}
		logger.Error("failed to create found disc", "error", err)
		InternalServerError(w, "Failed to create found disc")
		return
	}

	if h.metrics != nil {
		h.metrics.DiscReported()
	}
	logger.Info("found disc reported",
		"id", disc.ID,
		"course", disc.Course,
		"bin", disc.Bin,
	)

	WriteJSONCreated(w, disc)
}

// Inventory handles GET /api/inventory.
// Lists every disc that has not been claimed yet, ordered by id.
func (h *DiscHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	discs, err := h.store.ListUnclaimed(r.Context())
	if err != nil {
		logger.Error("failed to list inventory", "error", err)
		InternalServerError(w, "Failed to list inventory")
		return
	}

	if discs == nil {
		discs = []models.FoundDisc{}
	}
	WriteJSONOK(w, discs)
}

// Get handles GET /api/found-discs/{id}.
func (h *DiscHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := discIDParam(w, r)
	if !ok {
		return
	}

	disc, err := h.store.GetDisc(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrDiscNotFound) {
			NotFound(w, "Found disc not found")
			return
		}
		logger.Error("failed to get found disc", "id", id, "error", err)
		InternalServerError(w, "Failed to get found disc")
		return
	}

	WriteJSONOK(w, disc)
}

// MarkClaimed handles PUT /api/mark-claimed/{id}.
// Transitions the record to the claimed state and stamps the claim date.
// A missing id yields 404 rather than a silent success.
func (h *DiscHandler) MarkClaimed(w http.ResponseWriter, r *http.Request) {
	id, ok := discIDParam(w, r)
	if !ok {
		return
	}

	disc, err := h.store.MarkClaimed(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrDiscNotFound) {
			NotFound(w, fmt.Sprintf("No found disc with id %d", id))
			return
		}
		logger.Error("failed to mark disc claimed", "id", id, "error", err)
		InternalServerError(w, "Failed to mark disc claimed")
		return
	}

	if h.metrics != nil {
		h.metrics.DiscClaimed()
	}
	logger.Info("disc marked claimed", "id", id)

	WriteJSONOK(w, ClaimResponse{
		Message: fmt.Sprintf("Disc %d marked as claimed", id),
		Disc:    disc,
	})
}

// MarkTexted handles PUT /api/mark-texted/{id}.
// Records that the owner listed on the disc has been contacted.
func (h *DiscHandler) MarkTexted(w http.ResponseWriter, r *http.Request) {
	id, ok := discIDParam(w, r)
	if !ok {
		return
	}

	disc, err := h.store.MarkTexted(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrDiscNotFound) {
			NotFound(w, fmt.Sprintf("No found disc with id %d", id))
			return
		}
		logger.Error("failed to mark disc texted", "id", id, "error", err)
		InternalServerError(w, "Failed to mark disc texted")
		return
	}

	WriteJSONOK(w, disc)
}

// validationDetail flattens a validator error into a readable detail string.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %q is required", fe.Field())
	case "max":
		return fmt.Sprintf("Field %q exceeds %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Field %q is invalid", fe.Field())
	}
}
