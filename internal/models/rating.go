package models

import "gorm.io/gorm"

// Rating is a single user's 1-5 star rating of a store. The composite
// unique index keeps at most one row per (store, user) pair; re-rating
// updates that row in place.
type Rating struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	StoreID    string `json:"store_id" gorm:"type:varchar(36);uniqueIndex:idx_store_user" validate:"required,uuid"`
	UserID     string `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_store_user" validate:"required,uuid"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
