package store

import (
	"context"

	"github.com/apickard/discbin/pkg/lostfound/models"
)

// DiscStore defines the persistence operations for found-disc records.
type DiscStore interface {
	// CreateDisc persists a new found-disc record and populates its ID.
	CreateDisc(ctx context.Context, disc *models.FoundDisc) error

	// GetDisc retrieves a found-disc record by ID.
	// Returns models.ErrDiscNotFound if the record doesn't exist.
	GetDisc(ctx context.Context, id uint) (*models.FoundDisc, error)

	// ListUnclaimed returns all records whose status is not Claimed,
	// ordered by ID ascending.
	ListUnclaimed(ctx context.Context) ([]models.FoundDisc, error)

	// ListAll returns every record regardless of status, ordered by ID.
	ListAll(ctx context.Context) ([]models.FoundDisc, error)

	// MarkClaimed transitions a record to the Claimed status and records
	// the claim date. Returns models.ErrDiscNotFound if the record
	// doesn't exist, and the updated record otherwise.
	MarkClaimed(ctx context.Context, id uint) (*models.FoundDisc, error)

	// MarkTexted records that the owner has been texted about the disc.
	// Returns models.ErrDiscNotFound if the record doesn't exist.
	MarkTexted(ctx context.Context, id uint) (*models.FoundDisc, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close releases the database connection pool.
	Close() error
}

var _ DiscStore = (*GORMStore)(nil)
