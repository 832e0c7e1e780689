package service

import (
	"captionstudio/internal/models"
	"context"
	"github.com/stretchr/testify/mock"
	"io"
	"time"
)

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.CaptionSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetOwned(ctx context.Context, sessionID, userID string) (*models.CaptionSession, error) {
	args := m.Called(ctx, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaptionSession), args.Error(1)
}

func (m *MockSessionRepository) GetByUserID(ctx context.Context, userID string) ([]models.CaptionSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaptionSession), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *models.CaptionSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

type MockCaptionRepository struct {
	mock.Mock
}

func (m *MockCaptionRepository) Create(ctx context.Context, caption *models.Caption) error {
	args := m.Called(ctx, caption)
	return args.Error(0)
}

func (m *MockCaptionRepository) GetBySessionAndID(ctx context.Context, captionID, sessionID string) (*models.Caption, error) {
	args := m.Called(ctx, captionID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Caption), args.Error(1)
}

func (m *MockCaptionRepository) GetBySessionID(ctx context.Context, sessionID string) ([]models.Caption, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Caption), args.Error(1)
}

func (m *MockCaptionRepository) Update(ctx context.Context, caption *models.Caption) error {
	args := m.Called(ctx, caption)
	return args.Error(0)
}

func (m *MockCaptionRepository) Delete(ctx context.Context, captionID, sessionID string) error {
	args := m.Called(ctx, captionID, sessionID)
	return args.Error(0)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *models.CaptionTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, templateID string) (*models.CaptionTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaptionTemplate), args.Error(1)
}

func (m *MockTemplateRepository) GetAccessible(ctx context.Context, templateID, userID string) (*models.CaptionTemplate, error) {
	args := m.Called(ctx, templateID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaptionTemplate), args.Error(1)
}

func (m *MockTemplateRepository) GetVisibleToUser(ctx context.Context, userID string) ([]models.CaptionTemplate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaptionTemplate), args.Error(1)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, media *models.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) GetBySessionAndID(ctx context.Context, mediaID, sessionID string) (*models.Media, error) {
	args := m.Called(ctx, mediaID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaRepository) GetBySessionID(ctx context.Context, sessionID string) ([]models.Media, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Media), args.Error(1)
}

func (m *MockMediaRepository) Delete(ctx context.Context, mediaID, sessionID string) error {
	args := m.Called(ctx, mediaID, sessionID)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadMedia(ctx context.Context, sessionID, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, sessionID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteMedia(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
