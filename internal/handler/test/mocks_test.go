package test

import (
	"captionstudio/internal/models"
	"captionstudio/internal/repository"
	"context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"io"
	"time"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) GetUserFromToken(token string) (*models.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, req repository.CreateSessionRequest) (*models.CaptionSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaptionSession), args.Error(1)
}

func (m *MockSessionService) UpdateSession(ctx context.Context, req repository.UpdateSessionRequest) (*models.CaptionSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaptionSession), args.Error(1)
}

func (m *MockSessionService) ListSessions(ctx context.Context, userID string) ([]models.CaptionSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaptionSession), args.Error(1)
}

type MockCaptionService struct {
	mock.Mock
}

func (m *MockCaptionService) CreateCaption(ctx context.Context, req repository.CreateCaptionRequest) (*models.Caption, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Caption), args.Error(1)
}

func (m *MockCaptionService) UpdateCaption(ctx context.Context, req repository.UpdateCaptionRequest) (*models.Caption, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Caption), args.Error(1)
}

func (m *MockCaptionService) DeleteCaption(ctx context.Context, captionID, sessionID, userID string) error {
	args := m.Called(ctx, captionID, sessionID, userID)
	return args.Error(0)
}

func (m *MockCaptionService) ListCaptions(ctx context.Context, sessionID, userID string) ([]models.Caption, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Caption), args.Error(1)
}

type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) CreateTemplate(ctx context.Context, req repository.CreateTemplateRequest) (*models.CaptionTemplate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaptionTemplate), args.Error(1)
}

func (m *MockTemplateService) ListTemplates(ctx context.Context, userID string) ([]models.CaptionTemplate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaptionTemplate), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) AttachMedia(ctx context.Context, sessionID, userID, fileName string, file io.Reader, size int64) (*models.Media, error) {
	args := m.Called(ctx, sessionID, userID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaService) ListMedia(ctx context.Context, sessionID, userID string) ([]models.Media, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

func (m *MockMediaService) DeleteMedia(ctx context.Context, mediaID, sessionID, userID string) error {
	args := m.Called(ctx, mediaID, sessionID, userID)
	return args.Error(0)
}
