package models

import "gorm.io/gorm"

// Roles recognized by the application. A user's role decides which API
// surface is reachable and is fixed at creation time.
const (
	RoleAdmin      = "admin"
	RoleStoreOwner = "store_owner"
	RoleUser       = "user"
)

// User represents an account: an administrator, a store owner, or a
// regular rating user.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(60)" validate:"required,min=20,max=60"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required"` // No json tag for security
	Address    string `json:"address" gorm:"type:varchar(400)" validate:"omitempty,max=400"`
	Role       string `json:"role" gorm:"type:varchar(20)" validate:"required,oneof=admin store_owner user"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
