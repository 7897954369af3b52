package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"storerate/internal/models"
	"storerate/internal/repositories"
	"storerate/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(id, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) ListOwners() ([]models.OwnerSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OwnerSummary), args.Error(1)
}

func (m *MockUserRepository) ListWithFilters(filter repositories.UserFilter) ([]models.UserWithRating, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserWithRating), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Test successful registration: the password is hashed and the role
	// forced to user regardless of what the caller set.
	user := &models.User{
		Name:     "Alexandra Montgomery Whitfield",
		Email:    "alexandra@example.com",
		Password: "Secret@Pass1",
		Role:     models.RoleAdmin, // Must be overridden
	}

	mockRepo.On("GetByEmail", user.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "Secret@Pass1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Secret@Pass1")))
	mockRepo.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email 'alexandra@example.com' already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Secret@Pass1"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Alexandra Montgomery Whitfield",
		Email:    "alexandra@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleStoreOwner,
	}

	// Test successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, role, err := authService.LoginUser(user.Email, "Secret@Pass1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleStoreOwner, role)

	// The token must carry the identity and role claims with a one-hour
	// expiry.
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Role, claims["role"])
	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), exp, 5)
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password): no token is issued.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, _, err = authService.LoginUser(user.Email, "WrongPass@1")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Test unknown email
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com not found")).Once()
	_, _, err = authService.LoginUser("nobody@example.com", "Secret@Pass1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"role":    models.RoleUser,
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, models.RoleUser, claims["role"])

	// Test garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"role":    models.RoleUser,
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthService_UpdatePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Current@Pass1"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "alexandra@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	// Test successful change: a fresh hash is persisted.
	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	mockRepo.On("UpdatePassword", user.ID, mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("Updated@Pass2")) == nil
	})).Return(nil).Once()

	err := authService.UpdatePassword(user.ID, "Current@Pass1", "Updated@Pass2")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test wrong current password
	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	err = authService.UpdatePassword(user.ID, "WrongCurrent@1", "Updated@Pass2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "current password is incorrect")
	mockRepo.AssertExpectations(t)

	// Test vanished user
	mockRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("user with ID ghost not found")).Once()
	err = authService.UpdatePassword("ghost", "Current@Pass1", "Updated@Pass2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_EnsureAdminUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// Fresh database: the admin is created with the admin role.
	mockRepo.On("GetByEmail", "admin@storerate.local").Return(nil, fmt.Errorf("user with email admin@storerate.local not found")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleAdmin && u.Email == "admin@storerate.local"
	})).Return(nil).Once()

	err := authService.EnsureAdminUser("System Administrator Account", "admin@storerate.local", "Admin@123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Second run: the existing account is left untouched.
	mockRepo.On("GetByEmail", "admin@storerate.local").Return(&models.User{ID: "1"}, nil).Once()
	err = authService.EnsureAdminUser("System Administrator Account", "admin@storerate.local", "Admin@123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
