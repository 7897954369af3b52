package services_test

import (
	"fmt"
	"testing"

	"storerate/internal/models"
	"storerate/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminService_DashboardStats(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockStores := new(MockStoreRepository)
	mockRatings := new(MockRatingRepository)
	service := services.NewAdminService(mockUsers, mockStores, mockRatings)

	mockUsers.On("Count").Return(int64(12), nil).Once()
	mockStores.On("Count").Return(int64(4), nil).Once()
	mockRatings.On("Count").Return(int64(31), nil).Once()

	stats, err := service.DashboardStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalStores)
	assert.Equal(t, int64(31), stats.TotalRatings)
	mockUsers.AssertExpectations(t)
	mockStores.AssertExpectations(t)
	mockRatings.AssertExpectations(t)
}

func TestAdminService_CreateStoreOwner(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewAdminService(mockUsers, new(MockStoreRepository), new(MockRatingRepository))

	owner := &models.User{
		Name:     "Alexandra Montgomery Whitfield",
		Email:    "owner@shop.com",
		Password: "Owner@Pass12",
		Role:     models.RoleUser, // Must be overridden
	}
	mockUsers.On("GetByEmail", owner.Email).Return(nil, nil).Once()
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.CreateStoreOwner(owner)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStoreOwner, owner.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte("Owner@Pass12")))
	mockUsers.AssertExpectations(t)

	// Duplicate email is refused.
	mockUsers.On("GetByEmail", owner.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = service.CreateStoreOwner(owner)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockUsers.AssertExpectations(t)
}

func TestAdminService_CreateStore(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockStores := new(MockStoreRepository)
	service := services.NewAdminService(mockUsers, mockStores, new(MockRatingRepository))

	store := &models.Store{
		Name:    "Downtown Flagship Boutique Store",
		Address: "42 Market Street",
		OwnerID: "owner-1",
	}

	// Test successful creation for a real store owner
	mockUsers.On("GetByID", "owner-1").Return(&models.User{ID: "owner-1", Role: models.RoleStoreOwner}, nil).Once()
	mockStores.On("Create", store).Return(nil).Once()
	err := service.CreateStore(store)
	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
	mockStores.AssertExpectations(t)

	// Test missing owner
	mockUsers.On("GetByID", "ghost").Return(nil, fmt.Errorf("user with ID ghost not found")).Once()
	err = service.CreateStore(&models.Store{Name: "Uptown Artisan Coffee Emporium", OwnerID: "ghost"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockUsers.AssertExpectations(t)

	// Test owner without the store_owner role
	mockUsers.On("GetByID", "user-9").Return(&models.User{ID: "user-9", Role: models.RoleUser}, nil).Once()
	err = service.CreateStore(&models.Store{Name: "Uptown Artisan Coffee Emporium", OwnerID: "user-9"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a store owner")
	mockUsers.AssertExpectations(t)
	mockStores.AssertNotCalled(t, "Create", mock.Anything)
}
