package handlers

import (
	"log"

	"storerate/internal/middleware"
	"storerate/internal/models"
	"storerate/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OwnerHandler handles the store-owner API.
type OwnerHandler struct {
	ownerService *services.OwnerService
	authService  *services.AuthService
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(ownerService *services.OwnerService, authService *services.AuthService) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
		authService:  authService,
	}
}

// RegisterRoutes registers the store-owner routes behind the JWT check
// and the store_owner role gate.
func (h *OwnerHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/store",
		middleware.AuthRequired(h.authService),
		middleware.RoleRequired(models.RoleStoreOwner),
	)
	storeRoutes.Get("/my-stores", h.HandleMyStores)
}

// HandleMyStores lists the caller's stores with their rating aggregates
// and the individual ratings, including who submitted each one.
func (h *OwnerHandler) HandleMyStores(c *fiber.Ctx) error {
	ownerID, _ := c.Locals("user_id").(string)
	stores, err := h.ownerService.MyStores(ownerID)
	if err != nil {
		log.Printf("Error fetching stores for owner %s: %v", ownerID, err)
		return internalServerError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stores,
	})
}
