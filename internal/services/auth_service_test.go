package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"makhana/internal/events"
	"makhana/internal/models"
	"makhana/internal/repositories"
	"makhana/internal/services"
	"makhana/pkg/sheets"
)

const testJWTSecret = "test_jwt_secret"

func registerRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:       "Asha",
		LastName:        "Rao",
		Email:           "Asha@Example.com",
		Phone:           "9876543210",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	submitter := new(MockSubmitter)
	publisher := new(MockPublisher)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour, submitter, publisher, nil)

	mockRepo.On("GetByEmail", "asha@example.com").Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-123"
	}).Return(nil).Once()
	submitter.On("Submit", mock.Anything, sheets.TypeUserRegistration, mock.MatchedBy(func(r models.UserRegistrationSubmission) bool {
		return r.Name == "Asha Rao" && r.Email == "asha@example.com" && r.Timestamp != ""
	})).Return(okResult(sheets.TypeUserRegistration), nil).Once()
	publisher.On("Publish", events.UserRegistered, mock.Anything).Return(nil).Once()

	user, err := authService.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
	submitter.AssertExpectations(t)
	publisher.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByEmail", "asha@example.com").Return(&models.User{ID: "user-123"}, nil).Once()
	_, err = authService.RegisterUser(context.Background(), registerRequest())
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_SheetFailureKeepsAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	submitter := new(MockSubmitter)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour, submitter, nil, nil)

	mockRepo.On("GetByEmail", "asha@example.com").Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	submitter.On("Submit", mock.Anything, sheets.TypeUserRegistration, mock.Anything).
		Return(nil, fmt.Errorf("%w: boom", sheets.ErrTransport)).Once()

	user, err := authService.RegisterUser(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	mockRepo.AssertExpectations(t)
	submitter.AssertExpectations(t)
}

func TestAuthService_RegisterUser_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour, nil, nil, nil)

	mockRepo.On("GetByEmail", "asha@example.com").Return(nil, fmt.Errorf("database error")).Once()
	_, err := authService.RegisterUser(context.Background(), registerRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour, nil, nil, nil)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, got, err := authService.LoginUser("Test@Example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user, got)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.LoginUser(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Test invalid credentials (user not found)
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrUserNotFound).Once()
	_, _, err = authService.LoginUser("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, time.Hour, nil, nil, nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"email":   "test@example.com",
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "test@example.com", claims["email"])

	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	otherSecret, _ := token.SignedString([]byte("another_secret"))
	_, err = authService.ValidateToken(otherSecret)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
