package models

// Query projections returned by the aggregation queries. These are scan
// targets, not tables.

// StoreWithRating is a store row joined with its overall average rating
// and the requesting user's own rating, if any.
type StoreWithRating struct {
	StoreID       string  `json:"store_id" gorm:"column:store_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	OverallRating float64 `json:"overall_rating" gorm:"column:overall_rating"`
	UserRating    *int    `json:"user_rating" gorm:"column:user_rating"`
}

// OwnedStore is a store owned by the caller together with its rating
// aggregate and the individual ratings it received.
type OwnedStore struct {
	StoreID       string       `json:"store_id" gorm:"column:store_id"`
	Name          string       `json:"name"`
	Address       string       `json:"address"`
	AverageRating float64      `json:"average_rating" gorm:"column:average_rating"`
	ReviewCount   int          `json:"review_count" gorm:"column:review_count"`
	Ratings       []RaterEntry `json:"ratings" gorm:"-"`
}

// RaterEntry names one user and the rating they gave a store.
type RaterEntry struct {
	UserName string `json:"user_name" gorm:"column:user_name"`
	Rating   int    `json:"rating"`
}

// UserWithRating is a user row extended with the combined average rating
// across all stores they own. AvgRating is nil unless role is store_owner.
type UserWithRating struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	Role      string   `json:"role"`
	AvgRating *float64 `json:"avg_rating" gorm:"column:avg_rating"`
}

// OwnerSummary is the projection used for the store-owner dropdown.
type OwnerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DashboardStats holds the three admin dashboard counters.
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
