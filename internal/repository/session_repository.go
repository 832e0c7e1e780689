package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"captionstudio/internal/errs"
	"captionstudio/internal/models"
)

type SessionRepositoryImpl struct {
	db *sqlx.DB
}

type CreateSessionRequest struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	CoreMessage    *string `json:"core_message"`
	TargetAudience *string `json:"target_audience"`
}

type UpdateSessionRequest struct {
	SessionID      string  `json:"session_id"`
	UserID         string  `json:"user_id"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	CoreMessage    *string `json:"core_message"`
	TargetAudience *string `json:"target_audience"`
}

// HasUpdates reports whether the patch carries at least one field
func (r UpdateSessionRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.CoreMessage != nil || r.TargetAudience != nil
}

func NewSessionRepository(db *sqlx.DB) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *models.CaptionSession) error {
	query := `
        INSERT INTO caption_sessions
        (session_id, user_id, name, description, core_message, target_audience, created_at, updated_at)
        VALUES
        (:session_id, :user_id, :name, :description, :core_message, :target_audience, :created_at, :updated_at)
    `

	if session.SessionID == "" {
		session.SessionID = uuid.New().String()
	}

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("ошибка при создании сессии: %w", err)
	}

	return nil
}

func (r *SessionRepositoryImpl) GetOwned(ctx context.Context, sessionID, userID string) (*models.CaptionSession, error) {
	query := `
        SELECT * FROM caption_sessions
        WHERE session_id = $1 AND user_id = $2
    `

	var session models.CaptionSession
	err := r.db.GetContext(ctx, &session, query, sessionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFound("сессия не найдена")
		}
		return nil, fmt.Errorf("ошибка при получении сессии: %w", err)
	}

	return &session, nil
}

func (r *SessionRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]models.CaptionSession, error) {
	query := `
        SELECT * FROM caption_sessions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `

	var sessions []models.CaptionSession
	err := r.db.SelectContext(ctx, &sessions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сессий пользователя: %w", err)
	}

	return sessions, nil
}

func (r *SessionRepositoryImpl) Update(ctx context.Context, session *models.CaptionSession) error {
	query := `
		UPDATE caption_sessions SET
			name = :name,
			description = :description,
			core_message = :core_message,
			target_audience = :target_audience,
			updated_at = :updated_at
		WHERE session_id = :session_id AND user_id = :user_id
	`

	session.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении сессии: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errs.NewNotFound("сессия не найдена")
	}

	return nil
}
