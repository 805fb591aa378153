package apiclient

import (
	"context"
	"fmt"

	"github.com/apickard/discbin/pkg/lostfound/models"
)

// ReportFoundDiscRequest is the request body for reporting a found disc.
type ReportFoundDiscRequest struct {
	Course      string       `json:"course"`
	Name        string       `json:"name"`
	Disc        string       `json:"disc"`
	PhoneNumber string       `json:"phoneNumber"`
	Bin         string       `json:"bin"`
	DateFound   *models.Date `json:"dateFound,omitempty"`
	Comments    *string      `json:"comments,omitempty"`
}

// ClaimResult is the response for marking a disc claimed.
type ClaimResult struct {
	Message string            `json:"message"`
	Disc    *models.FoundDisc `json:"disc"`
}

// ReportFoundDisc logs a newly found disc and returns the stored record.
func (c *Client) ReportFoundDisc(ctx context.Context, req *ReportFoundDiscRequest) (*models.FoundDisc, error) {
	var disc models.FoundDisc
	if err := c.post(ctx, "/api/found-discs", req, &disc); err != nil {
		return nil, err
	}
	return &disc, nil
}

// Inventory returns all unclaimed discs.
func (c *Client) Inventory(ctx context.Context) ([]models.FoundDisc, error) {
	var discs []models.FoundDisc
	if err := c.get(ctx, "/api/inventory", &discs); err != nil {
		return nil, err
	}
	return discs, nil
}

// GetDisc returns a single found-disc record by id.
func (c *Client) GetDisc(ctx context.Context, id uint) (*models.FoundDisc, error) {
	var disc models.FoundDisc
	if err := c.get(ctx, fmt.Sprintf("/api/found-discs/%d", id), &disc); err != nil {
		return nil, err
	}
	return &disc, nil
}

// MarkClaimed marks a disc as claimed and returns the acknowledgement.
func (c *Client) MarkClaimed(ctx context.Context, id uint) (*ClaimResult, error) {
	var result ClaimResult
	if err := c.put(ctx, fmt.Sprintf("/api/mark-claimed/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkTexted records that the owner has been texted and returns the record.
func (c *Client) MarkTexted(ctx context.Context, id uint) (*models.FoundDisc, error) {
	var disc models.FoundDisc
	if err := c.put(ctx, fmt.Sprintf("/api/mark-texted/%d", id), nil, &disc); err != nil {
		return nil, err
	}
	return &disc, nil
}

// Health reports whether the server's readiness probe succeeds.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health/ready", nil)
}
