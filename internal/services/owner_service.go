package services

import (
	"fmt"

	"storerate/internal/models"
	"storerate/internal/repositories"
)

// OwnerService handles the store-owner view of their own stores.
type OwnerService struct {
	storeRepo repositories.StoreRepository
}

// NewOwnerService creates a new OwnerService.
func NewOwnerService(storeRepo repositories.StoreRepository) *OwnerService {
	return &OwnerService{
		storeRepo: storeRepo,
	}
}

// MyStores returns the caller's stores with their rating aggregates and,
// per store, every individual rating with the rating author's name.
func (s *OwnerService) MyStores(ownerID string) ([]models.OwnedStore, error) {
	stores, err := s.storeRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores for owner: %w", err)
	}

	for i := range stores {
		raters, err := s.storeRepo.ListRaters(stores[i].StoreID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch raters for store %s: %w", stores[i].StoreID, err)
		}
		stores[i].Ratings = raters
	}
	return stores, nil
}
