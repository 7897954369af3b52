package repositories

import "storerate/internal/models"

// StoreRepository defines the interface for store data access, including
// the rating-aggregation projections used by the listing endpoints.
type StoreRepository interface {
	Create(store *models.Store) error
	GetByID(id string) (*models.Store, error)
	ListWithRatings(viewerID string) ([]models.StoreWithRating, error)
	ListByOwner(ownerID string) ([]models.OwnedStore, error)
	ListRaters(storeID string) ([]models.RaterEntry, error)
	Count() (int64, error)
}
