package store

import (
	"context"
	"fmt"

	"github.com/apickard/discbin/pkg/lostfound/models"
)

// CreateDisc persists a new found-disc record.
// The record is validated before insertion and its ID is populated on success.
func (s *GORMStore) CreateDisc(ctx context.Context, disc *models.FoundDisc) error {
	if err := disc.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(disc).Error; err != nil {
		if isConstraintError(err) {
			return fmt.Errorf("%w: %v", models.ErrInvalidDisc, err)
		}
		return fmt.Errorf("failed to create found disc: %w", err)
	}

	return nil
}

// GetDisc retrieves a found-disc record by ID.
func (s *GORMStore) GetDisc(ctx context.Context, id uint) (*models.FoundDisc, error) {
	var disc models.FoundDisc
	err := s.db.WithContext(ctx).First(&disc, id).Error
	if err != nil {
		return nil, convertNotFoundError(err, models.ErrDiscNotFound)
	}
	return &disc, nil
}

// ListUnclaimed returns all records still in the bin, ordered by ID.
// The comparison uses the canonical status constant so claimed discs are
// excluded regardless of how many rows the table holds.
func (s *GORMStore) ListUnclaimed(ctx context.Context) ([]models.FoundDisc, error) {
	var discs []models.FoundDisc
	err := s.db.WithContext(ctx).
		Where("status <> ?", models.StatusClaimed).
		Order("id").
		Find(&discs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unclaimed discs: %w", err)
	}
	return discs, nil
}

// ListAll returns every found-disc record, ordered by ID.
func (s *GORMStore) ListAll(ctx context.Context) ([]models.FoundDisc, error) {
	var discs []models.FoundDisc
	err := s.db.WithContext(ctx).Order("id").Find(&discs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list discs: %w", err)
	}
	return discs, nil
}

// MarkClaimed transitions a record to the Claimed status and stamps the
// claim date. A missing record surfaces as models.ErrDiscNotFound rather
// than a silent success.
func (s *GORMStore) MarkClaimed(ctx context.Context, id uint) (*models.FoundDisc, error) {
	today := models.Today()
	result := s.db.WithContext(ctx).
		Model(&models.FoundDisc{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      models.StatusClaimed,
			"dateClaimed": today,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark disc claimed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrDiscNotFound
	}

	return s.GetDisc(ctx, id)
}

// MarkTexted records that the owner has been texted about the disc.
// Already-claimed records are left alone. The claimed guard lives in
// the WHERE clause so a concurrent claim cannot be overwritten.
func (s *GORMStore) MarkTexted(ctx context.Context, id uint) (*models.FoundDisc, error) {
	today := models.Today()
	result := s.db.WithContext(ctx).
		Model(&models.FoundDisc{}).
		Where("id = ? AND status <> ?", id, models.StatusClaimed).
		Updates(map[string]any{
			"status":     models.StatusTexted,
			"dateTexted": today,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark disc texted: %w", result.Error)
	}

	// Zero affected rows means the id is missing (GetDisc reports the
	// not-found) or the disc is already claimed and stays untouched.
	return s.GetDisc(ctx, id)
}
