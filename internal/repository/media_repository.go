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

type MediaRepositoryImpl struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) *MediaRepositoryImpl {
	return &MediaRepositoryImpl{db: db}
}

func (r *MediaRepositoryImpl) Create(ctx context.Context, media *models.Media) error {
	query := `
		INSERT INTO media (media_id, session_id, media_url, created_at)
		VALUES (:media_id, :session_id, :media_url, :created_at)
	`

	if media.MediaID == "" {
		media.MediaID = uuid.New().String()
	}

	if media.CreatedAt.IsZero() {
		media.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, media)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении медиафайла: %w", err)
	}

	return nil
}

func (r *MediaRepositoryImpl) GetBySessionAndID(ctx context.Context, mediaID, sessionID string) (*models.Media, error) {
	query := `SELECT * FROM media WHERE media_id = $1 AND session_id = $2`

	var media models.Media
	err := r.db.GetContext(ctx, &media, query, mediaID, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFound("медиафайл не найден")
		}
		return nil, fmt.Errorf("ошибка при получении медиафайла: %w", err)
	}

	return &media, nil
}

func (r *MediaRepositoryImpl) GetBySessionID(ctx context.Context, sessionID string) ([]models.Media, error) {
	query := `SELECT * FROM media WHERE session_id = $1 ORDER BY created_at`

	var media []models.Media
	err := r.db.SelectContext(ctx, &media, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении медиафайлов: %w", err)
	}

	return media, nil
}

func (r *MediaRepositoryImpl) Delete(ctx context.Context, mediaID, sessionID string) error {
	query := `DELETE FROM media WHERE media_id = $1 AND session_id = $2`

	result, err := r.db.ExecContext(ctx, query, mediaID, sessionID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении медиафайла: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errs.NewNotFound("медиафайл не найден")
	}

	return nil
}
