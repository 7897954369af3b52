package repositories

import "storerate/internal/models"

// RatingRepository defines the interface for rating data access.
type RatingRepository interface {
	// Upsert inserts the rating, or updates the existing row when the
	// (store_id, user_id) pair already has one. The passed rating is
	// rewritten to the canonical persisted row.
	Upsert(rating *models.Rating) error
	GetByStoreAndUser(storeID, userID string) (*models.Rating, error)
	Count() (int64, error)
}
