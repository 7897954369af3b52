package models

import "gorm.io/gorm"

// Store represents a rateable store. Every store belongs to exactly one
// owner, a user whose role is store_owner.
type Store struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(60)" validate:"required,min=20,max=60"`
	Email      string `json:"email" gorm:"type:varchar(255)" validate:"omitempty,email"`
	Address    string `json:"address" gorm:"type:varchar(400)" validate:"omitempty,max=400"`
	OwnerID    string `json:"owner_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
