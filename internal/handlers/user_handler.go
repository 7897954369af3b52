package handlers

import (
	"log"
	"strings"

	"storerate/internal/middleware"
	"storerate/internal/models"
	"storerate/internal/services"
	"storerate/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles the regular-user API: store browsing and rating
// submission.
type UserHandler struct {
	ratingService *services.RatingService
	authService   *services.AuthService
	validate      *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(ratingService *services.RatingService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		ratingService: ratingService,
		authService:   authService,
		validate:      validation.New(),
	}
}

// RegisterRoutes registers the user routes behind the JWT check and the
// user role gate.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user",
		middleware.AuthRequired(h.authService),
		middleware.RoleRequired(models.RoleUser),
	)
	userRoutes.Get("/stores", h.HandleListStores)
	userRoutes.Post("/rate", h.HandleRateStore)
}

// HandleListStores lists every store with its overall rating and the
// caller's own prior rating, if any.
func (h *UserHandler) HandleListStores(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	stores, err := h.ratingService.ListStores(userID)
	if err != nil {
		log.Printf("Error fetching stores: %v", err)
		return internalServerError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stores,
	})
}

// RateRequest represents the request body for a rating submission.
type RateRequest struct {
	StoreID string `json:"storeId" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// HandleRateStore submits or updates the caller's rating of a store.
func (h *UserHandler) HandleRateStore(c *fiber.Ctx) error {
	var req RateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rate request body: %v", err)
		return badRequestBody(c, err)
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"errors":  validation.FieldErrors(err),
		})
	}

	userID, _ := c.Locals("user_id").(string)
	rating, err := h.ratingService.RateStore(userID, req.StoreID, req.Rating)
	if err != nil {
		log.Printf("Error submitting rating: %v", err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		if strings.Contains(err.Error(), "must be between") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return internalServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rating,
	})
}
