package services

import (
	"fmt"
	"log"

	"storerate/internal/models"
	"storerate/internal/repositories"
	"storerate/pkg/rabbitmq"
)

// RatingService handles store browsing and rating submission for regular
// users.
type RatingService struct {
	ratingRepo repositories.RatingRepository
	storeRepo  repositories.StoreRepository
	mqClient   *rabbitmq.Client // RabbitMQ client, nil when messaging is disabled
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repositories.RatingRepository, storeRepo repositories.StoreRepository, mqClient *rabbitmq.Client) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
		mqClient:   mqClient,
	}
}

// ListStores returns every store with its overall rating and the
// requesting user's own rating, if any.
func (s *RatingService) ListStores(userID string) ([]models.StoreWithRating, error) {
	return s.storeRepo.ListWithRatings(userID)
}

// RateStore records a user's 1-5 rating of a store. A repeat submission
// by the same user for the same store overwrites the previous value; the
// repository upsert makes that a single conditional write, so concurrent
// submissions cannot leave duplicate rows.
func (s *RatingService) RateStore(userID, storeID string, value int) (*models.Rating, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", value)
	}

	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, fmt.Errorf("store %s not found", storeID)
	}

	rating := &models.Rating{
		StoreID: storeID,
		UserID:  userID,
		Rating:  value,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	// Publish a rating event so a consumer can notify the store owner.
	// Best effort: a broker failure never fails the submission.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"ratingID": rating.ID,
			"storeID":  store.ID,
			"ownerID":  store.OwnerID,
			"userID":   userID,
			"rating":   value,
		}
		if err := s.mqClient.PublishRatingSubmitted(event); err != nil {
			log.Printf("Warning: Failed to publish rating event for store %s: %v", store.ID, err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return rating, nil
}
