package repositories

import (
	"fmt"
	"strings"

	"storerate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// UpdatePassword overwrites the stored password hash for a user.
func (r *GORMUserRepository) UpdatePassword(id, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("password", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("failed to update password for user %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s not found", id)
	}
	return nil
}

// ListOwners returns every user with the store_owner role, projected for
// the admin's owner dropdown.
func (r *GORMUserRepository) ListOwners() ([]models.OwnerSummary, error) {
	var owners []models.OwnerSummary
	err := r.db.Model(&models.User{}).
		Select("id, name, email").
		Where("role = ?", models.RoleStoreOwner).
		Order("name").
		Scan(&owners).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list store owners: %w", err)
	}
	return owners, nil
}

// ListWithFilters returns users matching the given filters. Store owners
// carry the combined average rating across all of their stores; other
// roles carry a NULL avg_rating.
func (r *GORMUserRepository) ListWithFilters(filter UserFilter) ([]models.UserWithRating, error) {
	query := `
		SELECT u.id, u.name, u.email, u.address, u.role,
			CASE
				WHEN u.role = 'store_owner' THEN COALESCE(ROUND(AVG(r.rating), 1), 0)
				ELSE NULL
			END AS avg_rating
		FROM users u
		LEFT JOIN stores s ON s.owner_id = u.id AND s.deleted_at IS NULL
		LEFT JOIN ratings r ON r.store_id = s.id AND r.deleted_at IS NULL
		WHERE u.deleted_at IS NULL`
	var args []interface{}

	// LOWER/LIKE instead of ILIKE so the same query runs on both
	// PostgreSQL and SQLite.
	if filter.Name != "" {
		query += " AND LOWER(u.name) LIKE ?"
		args = append(args, "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Email != "" {
		query += " AND LOWER(u.email) LIKE ?"
		args = append(args, "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.Address != "" {
		query += " AND LOWER(u.address) LIKE ?"
		args = append(args, "%"+strings.ToLower(filter.Address)+"%")
	}
	if filter.Role != "" {
		query += " AND u.role = ?"
		args = append(args, filter.Role)
	}

	query += `
		GROUP BY u.id, u.name, u.email, u.address, u.role
		ORDER BY u.name`

	var users []models.UserWithRating
	if err := r.db.Raw(query, args...).Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Count returns the total number of users.
func (r *GORMUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
