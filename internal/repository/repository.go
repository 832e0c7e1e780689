package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"captionstudio/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.CaptionSession) error
	// GetOwned is the ownership guard, a session of another user
	// is indistinguishable from a missing one
	GetOwned(ctx context.Context, sessionID, userID string) (*models.CaptionSession, error)
	GetByUserID(ctx context.Context, userID string) ([]models.CaptionSession, error)
	Update(ctx context.Context, session *models.CaptionSession) error
}

type CaptionRepository interface {
	Create(ctx context.Context, caption *models.Caption) error
	GetBySessionAndID(ctx context.Context, captionID, sessionID string) (*models.Caption, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.Caption, error)
	Update(ctx context.Context, caption *models.Caption) error
	Delete(ctx context.Context, captionID, sessionID string) error
}

type TemplateRepository interface {
	Create(ctx context.Context, template *models.CaptionTemplate) error
	GetByID(ctx context.Context, templateID string) (*models.CaptionTemplate, error)
	// GetAccessible is the template guard, a missing template is NotFound,
	// a private template of another user is Forbidden
	GetAccessible(ctx context.Context, templateID, userID string) (*models.CaptionTemplate, error)
	GetVisibleToUser(ctx context.Context, userID string) ([]models.CaptionTemplate, error)
}

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetBySessionAndID(ctx context.Context, mediaID, sessionID string) (*models.Media, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.Media, error)
	Delete(ctx context.Context, mediaID, sessionID string) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Caption  CaptionRepository
	Template TemplateRepository
	Media    MediaRepository
	Tables   TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Session:  NewSessionRepository(db),
		Caption:  NewCaptionRepository(db),
		Template: NewTemplateRepository(db),
		Media:    NewMediaRepository(db),
		Tables:   NewTablesRepository(db),
	}
}
