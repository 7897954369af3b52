package repositories

import (
	"fmt"

	"storerate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// Upsert performs an atomic insert-or-update keyed on the
// (store_id, user_id) unique index. Two concurrent submissions from the
// same user for the same store resolve last-write-wins instead of
// producing a duplicate-row error.
func (r *GORMRatingRepository) Upsert(rating *models.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	// On conflict the pre-generated ID was discarded in favor of the
	// existing row; re-read so the caller sees the persisted row.
	var persisted models.Rating
	if err := r.db.First(&persisted, "store_id = ? AND user_id = ?", rating.StoreID, rating.UserID).Error; err != nil {
		return fmt.Errorf("failed to read back rating: %w", err)
	}
	*rating = persisted
	return nil
}

// GetByStoreAndUser retrieves the rating a user gave a store.
func (r *GORMRatingRepository) GetByStoreAndUser(storeID, userID string) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, "store_id = ? AND user_id = ?", storeID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("rating for store %s by user %s not found", storeID, userID)
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return &rating, nil
}

// Count returns the total number of ratings.
func (r *GORMRatingRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Rating{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return count, nil
}
