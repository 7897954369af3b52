package repositories

import (
	"fmt"

	"storerate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// Create creates a new store in the database.
func (r *GORMStoreRepository) Create(store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// GetByID retrieves a store by its ID from the database.
func (r *GORMStoreRepository) GetByID(id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("store with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

// ListWithRatings returns every store with its overall average rating
// (rounded to one decimal, 0 when unrated) and the viewer's own rating
// for that store, if any.
func (r *GORMStoreRepository) ListWithRatings(viewerID string) ([]models.StoreWithRating, error) {
	query := `
		SELECT s.id AS store_id, s.name, s.email, s.address,
			COALESCE(ROUND(AVG(r.rating), 1), 0) AS overall_rating,
			ur.rating AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id AND r.deleted_at IS NULL
		LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = ? AND ur.deleted_at IS NULL
		WHERE s.deleted_at IS NULL
		GROUP BY s.id, s.name, s.email, s.address, ur.rating
		ORDER BY s.name`

	var stores []models.StoreWithRating
	if err := r.db.Raw(query, viewerID).Scan(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores with ratings: %w", err)
	}
	return stores, nil
}

// ListByOwner returns the stores owned by ownerID with their rating
// aggregates. The per-rater breakdown is filled in separately via
// ListRaters.
func (r *GORMStoreRepository) ListByOwner(ownerID string) ([]models.OwnedStore, error) {
	query := `
		SELECT s.id AS store_id, s.name, s.address,
			COALESCE(ROUND(AVG(r.rating), 1), 0) AS average_rating,
			COUNT(r.id) AS review_count
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id AND r.deleted_at IS NULL
		WHERE s.owner_id = ? AND s.deleted_at IS NULL
		GROUP BY s.id, s.name, s.address
		ORDER BY s.name`

	var stores []models.OwnedStore
	if err := r.db.Raw(query, ownerID).Scan(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores for owner %s: %w", ownerID, err)
	}
	return stores, nil
}

// ListRaters returns every rating a store received together with the
// rating author's name.
func (r *GORMStoreRepository) ListRaters(storeID string) ([]models.RaterEntry, error) {
	query := `
		SELECT u.name AS user_name, r.rating
		FROM ratings r
		JOIN users u ON u.id = r.user_id AND u.deleted_at IS NULL
		WHERE r.store_id = ? AND r.deleted_at IS NULL
		ORDER BY u.name`

	var raters []models.RaterEntry
	if err := r.db.Raw(query, storeID).Scan(&raters).Error; err != nil {
		return nil, fmt.Errorf("failed to list raters for store %s: %w", storeID, err)
	}
	return raters, nil
}

// Count returns the total number of stores.
func (r *GORMStoreRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Store{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}
