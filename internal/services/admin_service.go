package services

import (
	"fmt"

	"storerate/internal/models"
	"storerate/internal/repositories"
)

// AdminService handles the admin-only management operations: dashboard
// counters, user and store-owner provisioning, and store creation.
type AdminService struct {
	userRepo   repositories.UserRepository
	storeRepo  repositories.StoreRepository
	ratingRepo repositories.RatingRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository, storeRepo repositories.StoreRepository, ratingRepo repositories.RatingRepository) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// DashboardStats returns the three dashboard counters. The counts are
// three independent queries; a store or rating created between them is
// acceptable drift for a dashboard.
func (s *AdminService) DashboardStats() (*models.DashboardStats, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	totalStores, err := s.storeRepo.Count()
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratingRepo.Count()
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

// CreateStoreOwner provisions a store-owner account. Same flow as
// registration with the role forced to store_owner.
func (s *AdminService) CreateStoreOwner(owner *models.User) error {
	owner.Role = models.RoleStoreOwner
	return s.createAccount(owner)
}

// CreateUser provisions an account with any role chosen by the admin.
func (s *AdminService) CreateUser(user *models.User) error {
	return s.createAccount(user)
}

func (s *AdminService) createAccount(user *models.User) error {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashedPassword

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListOwners returns every store-owner account for the store form's
// owner dropdown.
func (s *AdminService) ListOwners() ([]models.OwnerSummary, error) {
	return s.userRepo.ListOwners()
}

// CreateStore creates a store after checking that the owner exists and
// actually holds the store_owner role.
func (s *AdminService) CreateStore(store *models.Store) error {
	owner, err := s.userRepo.GetByID(store.OwnerID)
	if err != nil {
		return fmt.Errorf("owner with ID %s not found", store.OwnerID)
	}
	if owner.Role != models.RoleStoreOwner {
		return fmt.Errorf("user %s is not a store owner", store.OwnerID)
	}

	if err := s.storeRepo.Create(store); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// ListStoresWithRatings returns every store with its overall rating and
// the admin's own rating, if the admin rated it.
func (s *AdminService) ListStoresWithRatings(adminID string) ([]models.StoreWithRating, error) {
	return s.storeRepo.ListWithRatings(adminID)
}

// ListUsers returns users matching the given filters, with the combined
// average rating of owned stores for store-owner rows.
func (s *AdminService) ListUsers(filter repositories.UserFilter) ([]models.UserWithRating, error) {
	return s.userRepo.ListWithFilters(filter)
}
