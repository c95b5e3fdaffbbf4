package services_test

import (
	"fmt"
	"testing"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	var stored *models.User
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*models.User)
		stored.ID = 1
	}).Return(nil).Once()

	user, err := authService.RegisterUser(&models.RegisterRequest{
		Username: "alice",
		Password: "Passw0rd",
		Name:     "Alice",
		Email:    "alice@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.CreatedAt)

	// The stored password is a hash that verifies against the plaintext and
	// never equals it.
	assert.NotEqual(t, "Passw0rd", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Passw0rd")))
	mockRepo.AssertExpectations(t)

	// A duplicate username surfaces as the store's duplicate-key kind.
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("username alice: %w", repositories.ErrDuplicateKey)).Once()
	_, err = authService.RegisterUser(&models.RegisterRequest{
		Username: "alice",
		Password: "Passw0rd",
		Name:     "Alice",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterHashNotDeterministic(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	var hashes []string
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		hashes = append(hashes, args.Get(0).(*models.User).Password)
	}).Return(nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := authService.RegisterUser(&models.RegisterRequest{
			Username: "alice",
			Password: "Passw0rd",
			Name:     "Alice",
			Email:    "alice@example.com",
		})
		assert.NoError(t, err)
	}

	// bcrypt salts every call, so two hashes of the same plaintext differ.
	assert.NotEqual(t, hashes[0], hashes[1])
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       7,
		Username: "alice",
		Password: string(hashedPassword),
		Name:     "Alice",
		Email:    "alice@example.com",
	}

	// Successful login yields a token carrying the subject id and name.
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	token, err := authService.LoginUser("alice", "Passw0rd")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), claims.ExpiresAt, 5)
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByUsername", "alice").Return(user, nil).Once()
	_, err = authService.LoginUser("alice", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown username gets the same answer as a wrong password.
	mockRepo.On("GetByUsername", "nobody").
		Return(nil, fmt.Errorf("user nobody: %w", repositories.ErrNotFound)).Once()
	_, err = authService.LoginUser("nobody", "Passw0rd")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// A freshly issued token verifies.
	token, err := authService.IssueToken(7, "Alice")
	assert.NoError(t, err)
	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)

	// Garbage is rejected.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// A token signed with a different secret is rejected.
	otherService := services.NewAuthService(mockRepo, "another_secret")
	otherToken, err := otherService.IssueToken(7, "Alice")
	assert.NoError(t, err)
	_, err = authService.ValidateToken(otherToken)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// A token with its expiry in the past is rejected, no grace window.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &services.Claims{
		UserID: 7,
		Name:   "Alice",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	expiredString, err := expired.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	_, err = authService.ValidateToken(expiredString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
