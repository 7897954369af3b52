package handlers

import (
	"log"
	"strings"

	"storerate/internal/middleware"
	"storerate/internal/models"
	"storerate/internal/repositories"
	"storerate/internal/services"
	"storerate/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin management API.
type AdminHandler struct {
	adminService *services.AdminService
	authService  *services.AuthService
	validate     *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
		validate:     validation.New(),
	}
}

// RegisterRoutes registers the admin routes. Every route sits behind the
// JWT check plus the admin role gate.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin",
		middleware.AuthRequired(h.authService),
		middleware.RoleRequired(models.RoleAdmin),
	)
	adminRoutes.Get("/dashboard", h.HandleDashboard)
	adminRoutes.Post("/add-store-owner", h.HandleAddStoreOwner)
	adminRoutes.Get("/owners", h.HandleListOwners)
	adminRoutes.Post("/add-store", h.HandleAddStore)
	adminRoutes.Get("/stores", h.HandleListStores)
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Post("/users", h.HandleCreateUser)
}

// HandleDashboard returns the total user, store and rating counters.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.adminService.DashboardStats()
	if err != nil {
		log.Printf("Error fetching admin dashboard data: %v", err)
		return internalServerError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// CreateOwnerRequest represents the request body for creating a store
// owner. Same field rules as self-registration.
type CreateOwnerRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Address  string `json:"address" validate:"omitempty,max=400"`
}

// HandleAddStoreOwner creates a store-owner account.
func (h *AdminHandler) HandleAddStoreOwner(c *fiber.Ctx) error {
	var req CreateOwnerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-store-owner request body: %v", err)
		return badRequestBody(c, err)
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"errors":  validation.FieldErrors(err),
		})
	}

	owner := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	}
	if err := h.adminService.CreateStoreOwner(&owner); err != nil {
		log.Printf("Error creating store owner: %v", err)
		if strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return internalServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Store owner created successfully",
		"owner": fiber.Map{
			"id":    owner.ID,
			"name":  owner.Name,
			"email": owner.Email,
			"role":  owner.Role,
		},
	})
}

// HandleListOwners lists every store-owner account.
func (h *AdminHandler) HandleListOwners(c *fiber.Ctx) error {
	owners, err := h.adminService.ListOwners()
	if err != nil {
		log.Printf("Error fetching store owners: %v", err)
		return internalServerError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"owners":  owners,
	})
}

// CreateStoreRequest represents the request body for creating a store.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=20,max=60"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=400"`
	OwnerID string `json:"owner_id" validate:"required,uuid"`
}

// HandleAddStore creates a store for an existing store owner.
func (h *AdminHandler) HandleAddStore(c *fiber.Ctx) error {
	var req CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-store request body: %v", err)
		return badRequestBody(c, err)
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"errors":  validation.FieldErrors(err),
		})
	}

	store := models.Store{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	}
	if err := h.adminService.CreateStore(&store); err != nil {
		log.Printf("Error adding store: %v", err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "not a store owner") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return internalServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Store added successfully",
		"store":   store,
	})
}

// HandleListStores lists every store with its overall rating and the
// admin's own rating.
func (h *AdminHandler) HandleListStores(c *fiber.Ctx) error {
	adminID, _ := c.Locals("user_id").(string)
	stores, err := h.adminService.ListStoresWithRatings(adminID)
	if err != nil {
		log.Printf("Error fetching stores: %v", err)
		return internalServerError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stores":  stores,
	})
}

// HandleListUsers lists users matching the optional name, email, address
// and role query filters.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	filter := repositories.UserFilter{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Address: c.Query("address"),
		Role:    c.Query("role"),
	}

	users, err := h.adminService.ListUsers(filter)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		return internalServerError(c)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    users,
	})
}

// CreateUserRequest represents the request body for creating a user with
// an admin-chosen role. Field rules match self-registration.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Address  string `json:"address" validate:"omitempty,max=400"`
	Role     string `json:"role" validate:"required,oneof=admin store_owner user"`
}

// HandleCreateUser creates a user with any role.
func (h *AdminHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-user request body: %v", err)
		return badRequestBody(c, err)
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing fields",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"errors":  validation.FieldErrors(err),
		})
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     req.Role,
	}
	if err := h.adminService.CreateUser(&user); err != nil {
		log.Printf("Error creating user: %v", err)
		if strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return internalServerError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"address": user.Address,
			"role":    user.Role,
		},
	})
}

// internalServerError writes the shared 500 envelope.
func internalServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal Server Error",
	})
}

// badRequestBody writes the shared malformed-body envelope.
func badRequestBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid request body",
		"detail":  err.Error(),
	})
}
