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

type CaptionRepositoryImpl struct {
	db *sqlx.DB
}

type CreateCaptionRequest struct {
	SessionID    string  `json:"session_id"`
	UserID       string  `json:"user_id"`
	TemplateID   *string `json:"template_id"`
	Platform     *string `json:"platform"`
	Tone         *string `json:"tone"`
	VariantLabel *string `json:"variant_label"`
	CaptionText  string  `json:"caption_text"`
	Hashtags     *string `json:"hashtags"`
}

type UpdateCaptionRequest struct {
	CaptionID    string  `json:"caption_id"`
	SessionID    string  `json:"session_id"`
	UserID       string  `json:"user_id"`
	Platform     *string `json:"platform"`
	Tone         *string `json:"tone"`
	VariantLabel *string `json:"variant_label"`
	CaptionText  *string `json:"caption_text"`
	Hashtags     *string `json:"hashtags"`
}

// HasUpdates reports whether the patch carries at least one field
func (r UpdateCaptionRequest) HasUpdates() bool {
	return r.Platform != nil || r.Tone != nil || r.VariantLabel != nil ||
		r.CaptionText != nil || r.Hashtags != nil
}

func NewCaptionRepository(db *sqlx.DB) *CaptionRepositoryImpl {
	return &CaptionRepositoryImpl{db: db}
}

func (r *CaptionRepositoryImpl) Create(ctx context.Context, caption *models.Caption) error {
	query := `
        INSERT INTO captions
        (caption_id, session_id, platform, tone, variant_label, caption_text, hashtags, created_at)
        VALUES
        (:caption_id, :session_id, :platform, :tone, :variant_label, :caption_text, :hashtags, :created_at)
    `

	if caption.CaptionID == "" {
		caption.CaptionID = uuid.New().String()
	}

	if caption.CreatedAt.IsZero() {
		caption.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, caption)
	if err != nil {
		return fmt.Errorf("ошибка при создании варианта подписи: %w", err)
	}

	return nil
}

func (r *CaptionRepositoryImpl) GetBySessionAndID(ctx context.Context, captionID, sessionID string) (*models.Caption, error) {
	query := `
        SELECT * FROM captions
        WHERE caption_id = $1 AND session_id = $2
    `

	var caption models.Caption
	err := r.db.GetContext(ctx, &caption, query, captionID, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFound("вариант подписи не найден")
		}
		return nil, fmt.Errorf("ошибка при получении варианта подписи: %w", err)
	}

	return &caption, nil
}

func (r *CaptionRepositoryImpl) GetBySessionID(ctx context.Context, sessionID string) ([]models.Caption, error) {
	query := `
        SELECT * FROM captions
        WHERE session_id = $1
        ORDER BY created_at
    `

	var captions []models.Caption
	err := r.db.SelectContext(ctx, &captions, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении вариантов подписи: %w", err)
	}

	return captions, nil
}

func (r *CaptionRepositoryImpl) Update(ctx context.Context, caption *models.Caption) error {
	query := `
		UPDATE captions SET
			platform = :platform,
			tone = :tone,
			variant_label = :variant_label,
			caption_text = :caption_text,
			hashtags = :hashtags
		WHERE caption_id = :caption_id AND session_id = :session_id
	`

	result, err := r.db.NamedExecContext(ctx, query, caption)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении варианта подписи: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errs.NewNotFound("вариант подписи не найден")
	}

	return nil
}

func (r *CaptionRepositoryImpl) Delete(ctx context.Context, captionID, sessionID string) error {
	query := `DELETE FROM captions WHERE caption_id = $1 AND session_id = $2`

	result, err := r.db.ExecContext(ctx, query, captionID, sessionID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении варианта подписи: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errs.NewNotFound("вариант подписи не найден")
	}

	return nil
}
