package service

import (
	"captionstudio/internal/config"
	"captionstudio/internal/errs"
	"captionstudio/internal/models"
	"captionstudio/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthService(userRepo *MockUserRepository) AuthService {
	cfg := &config.Config{
		JWTSecretKey:         "test-secret-key",
		AccessTokenDuration:  2 * time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	}
	return NewAuthService(userRepo, cfg)
}

func TestAuthService_Register(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	mockUserRepo.On("GetUserByEmail", mock.Anything, "new@example.com").
		Return((*models.User)(nil), errs.NewNotFound("пользователь не найден"))
	mockUserRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User"), "password123").Return(nil)

	req := repository.CreateUserRequest{
		Email:    "new@example.com",
		Password: "password123",
	}

	// Act
	result, err := service.Register(context.Background(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "new@example.com", result.Email)

	// a fresh refresh token is issued right at registration
	_, parseErr := uuid.Parse(result.RefreshToken)
	assert.NoError(t, parseErr)
	assert.True(t, result.RefreshTokenExpiryTime.After(time.Now()))

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	mockUserRepo.On("GetUserByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{UserID: "user-1", Email: "taken@example.com"}, nil)

	req := repository.CreateUserRequest{
		Email:    "taken@example.com",
		Password: "password123",
	}

	// Act
	result, err := service.Register(context.Background(), req)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errs.IsKind(err, errs.KindInvalidInput))
	assert.Contains(t, err.Error(), "уже существует")

	mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	mockUserRepo.On("VerifyPassword", mock.Anything, "user@example.com", "password123").
		Return(&models.User{UserID: "user-1", Email: "user@example.com"}, nil)
	mockUserRepo.On("UpdateRefreshToken", mock.Anything, "user-1",
		mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	// Act
	user, accessToken, refreshToken, err := service.Login(context.Background(), "user@example.com", "password123")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
	assert.NotEmpty(t, accessToken)

	_, parseErr := uuid.Parse(refreshToken)
	assert.NoError(t, parseErr)

	// the access token carries the identity claims back out
	fromToken, err := service.GetUserFromToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", fromToken.UserID)
	assert.Equal(t, "user@example.com", fromToken.Email)

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	mockUserRepo.On("VerifyPassword", mock.Anything, "user@example.com", "wrongpass").
		Return((*models.User)(nil), errs.NewUnauthorized("неверный пароль"))

	// Act
	user, accessToken, refreshToken, err := service.Login(context.Background(), "user@example.com", "wrongpass")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)
	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))

	mockUserRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_RefreshTokens(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	mockUserRepo.On("GetUserByRefreshToken", mock.Anything, "old-refresh-token").
		Return(&models.User{UserID: "user-1", Email: "user@example.com"}, nil)
	mockUserRepo.On("UpdateRefreshToken", mock.Anything, "user-1",
		mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	// Act
	user, accessToken, newRefreshToken, err := service.RefreshTokens(context.Background(), "old-refresh-token")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)

	// the used token is rotated out
	assert.NotEqual(t, "old-refresh-token", newRefreshToken)
	_, parseErr := uuid.Parse(newRefreshToken)
	assert.NoError(t, parseErr)

	fromToken, err := service.GetUserFromToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", fromToken.UserID)

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_RefreshTokens_ExpiredToken(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	mockUserRepo.On("GetUserByRefreshToken", mock.Anything, "stale-token").
		Return((*models.User)(nil), errs.NewUnauthorized("недействительный или просроченный refresh token"))

	// Act
	user, accessToken, refreshToken, err := service.RefreshTokens(context.Background(), "stale-token")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)
	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))

	mockUserRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	// the token is well formed but signed with another key
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-1",
		"email":  "user@example.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, signErr := token.SignedString([]byte("another-secret"))
	assert.NoError(t, signErr)

	// Act
	result, err := service.ValidateToken(signed)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	service := newAuthService(mockUserRepo)

	// Act
	result, err := service.ValidateToken("definitely-not-a-jwt")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "недействительный токен")
}

func TestAuthService_ExpiredAccessTokenRejected(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	cfg := &config.Config{
		JWTSecretKey:         "test-secret-key",
		AccessTokenDuration:  -time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	}
	service := NewAuthService(mockUserRepo, cfg)

	mockUserRepo.On("VerifyPassword", mock.Anything, "user@example.com", "password123").
		Return(&models.User{UserID: "user-1", Email: "user@example.com"}, nil)
	mockUserRepo.On("UpdateRefreshToken", mock.Anything, "user-1",
		mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	_, accessToken, _, err := service.Login(context.Background(), "user@example.com", "password123")
	assert.NoError(t, err)

	// Act
	result, err := service.ValidateToken(accessToken)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errs.IsKind(err, errs.KindUnauthorized))
}
