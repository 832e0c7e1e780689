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

type TemplateRepositoryImpl struct {
	db *sqlx.DB
}

type CreateTemplateRequest struct {
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	Platform *string `json:"platform"`
	Tone     *string `json:"tone"`
	Body     string  `json:"body"`
}

func NewTemplateRepository(db *sqlx.DB) *TemplateRepositoryImpl {
	return &TemplateRepositoryImpl{db: db}
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, template *models.CaptionTemplate) error {
	query := `
        INSERT INTO caption_templates
        (template_id, user_id, name, platform, tone, body, is_system, created_at)
        VALUES
        (:template_id, :user_id, :name, :platform, :tone, :body, :is_system, :created_at)
    `

	if template.TemplateID == "" {
		template.TemplateID = uuid.New().String()
	}

	if template.CreatedAt.IsZero() {
		template.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, template)
	if err != nil {
		return fmt.Errorf("ошибка при создании шаблона: %w", err)
	}

	return nil
}

func (r *TemplateRepositoryImpl) GetByID(ctx context.Context, templateID string) (*models.CaptionTemplate, error) {
	query := `
        SELECT * FROM caption_templates
        WHERE template_id = $1
    `

	var template models.CaptionTemplate
	err := r.db.GetContext(ctx, &template, query, templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFound("шаблон не найден")
		}
		return nil, fmt.Errorf("ошибка при получении шаблона: %w", err)
	}

	return &template, nil
}

// GetAccessible resolves the template by id alone, so a private template of
// another user comes back as Forbidden, not NotFound
func (r *TemplateRepositoryImpl) GetAccessible(ctx context.Context, templateID, userID string) (*models.CaptionTemplate, error) {
	template, err := r.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if template.UserID != nil && *template.UserID != userID {
		return nil, errs.NewForbidden("нет доступа к чужому шаблону")
	}

	return template, nil
}

func (r *TemplateRepositoryImpl) GetVisibleToUser(ctx context.Context, userID string) ([]models.CaptionTemplate, error) {
	query := `
        SELECT * FROM caption_templates
        WHERE user_id = $1 OR user_id IS NULL
        ORDER BY created_at DESC
    `

	var templates []models.CaptionTemplate
	err := r.db.SelectContext(ctx, &templates, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении шаблонов: %w", err)
	}

	return templates, nil
}
