package repositories

import "storerate/internal/models"

// UserFilter holds the optional admin user-listing filters. Name, Email
// and Address are case-insensitive substring matches; Role is an exact
// match. Empty fields impose no constraint.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdatePassword(id, passwordHash string) error
	ListOwners() ([]models.OwnerSummary, error)
	ListWithFilters(filter UserFilter) ([]models.UserWithRating, error)
	Count() (int64, error)
}
