package service

import (
	"context"

	"captionstudio/internal/config"
	"captionstudio/internal/models"
	"captionstudio/internal/repository"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, req repository.CreateTemplateRequest) (*models.CaptionTemplate, error)
	ListTemplates(ctx context.Context, userID string) ([]models.CaptionTemplate, error)
}

type templateService struct {
	templateRepo repository.TemplateRepository
	cfg          *config.Config
}

func NewTemplateService(templateRepo repository.TemplateRepository, cfg *config.Config) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		cfg:          cfg,
	}
}

func (s *templateService) CreateTemplate(ctx context.Context, req repository.CreateTemplateRequest) (*models.CaptionTemplate, error) {
	userID := req.UserID

	template := &models.CaptionTemplate{
		UserID:   &userID,
		Name:     req.Name,
		Platform: req.Platform,
		Tone:     req.Tone,
		Body:     req.Body,
		// system templates are seeded directly in the database,
		// the api never creates them
		IsSystem: false,
	}

	err := s.templateRepo.Create(ctx, template)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (s *templateService) ListTemplates(ctx context.Context, userID string) ([]models.CaptionTemplate, error) {
	templates, err := s.templateRepo.GetVisibleToUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return templates, nil
}
