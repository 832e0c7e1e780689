package service

import (
	"context"

	"captionstudio/internal/config"
	"captionstudio/internal/models"
	"captionstudio/internal/repository"
)

type CaptionService interface {
	CreateCaption(ctx context.Context, req repository.CreateCaptionRequest) (*models.Caption, error)
	UpdateCaption(ctx context.Context, req repository.UpdateCaptionRequest) (*models.Caption, error)
	DeleteCaption(ctx context.Context, captionID, sessionID, userID string) error
	ListCaptions(ctx context.Context, sessionID, userID string) ([]models.Caption, error)
}

type captionService struct {
	captionRepo  repository.CaptionRepository
	sessionRepo  repository.SessionRepository
	templateRepo repository.TemplateRepository
	cfg          *config.Config
}

func NewCaptionService(captionRepo repository.CaptionRepository, sessionRepo repository.SessionRepository, templateRepo repository.TemplateRepository, cfg *config.Config) CaptionService {
	return &captionService{
		captionRepo:  captionRepo,
		sessionRepo:  sessionRepo,
		templateRepo: templateRepo,
		cfg:          cfg,
	}
}

func (s *captionService) CreateCaption(ctx context.Context, req repository.CreateCaptionRequest) (*models.Caption, error) {
	_, err := s.sessionRepo.GetOwned(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	// the template here is only an access gate, its body is not
	// substituted into the caption text
	if req.TemplateID != nil {
		_, err := s.templateRepo.GetAccessible(ctx, *req.TemplateID, req.UserID)
		if err != nil {
			return nil, err
		}
	}

	caption := &models.Caption{
		SessionID:    req.SessionID,
		Platform:     req.Platform,
		Tone:         req.Tone,
		VariantLabel: req.VariantLabel,
		CaptionText:  req.CaptionText,
		Hashtags:     req.Hashtags,
	}

	err = s.captionRepo.Create(ctx, caption)
	if err != nil {
		return nil, err
	}

	return caption, nil
}

func (s *captionService) UpdateCaption(ctx context.Context, req repository.UpdateCaptionRequest) (*models.Caption, error) {
	_, err := s.sessionRepo.GetOwned(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	caption, err := s.captionRepo.GetBySessionAndID(ctx, req.CaptionID, req.SessionID)
	if err != nil {
		return nil, err
	}

	// nil means the field was absent from the patch
	if req.Platform != nil {
		caption.Platform = req.Platform
	}
	if req.Tone != nil {
		caption.Tone = req.Tone
	}
	if req.VariantLabel != nil {
		caption.VariantLabel = req.VariantLabel
	}
	if req.CaptionText != nil {
		caption.CaptionText = *req.CaptionText
	}
	if req.Hashtags != nil {
		caption.Hashtags = req.Hashtags
	}

	err = s.captionRepo.Update(ctx, caption)
	if err != nil {
		return nil, err
	}

	return caption, nil
}

func (s *captionService) DeleteCaption(ctx context.Context, captionID, sessionID, userID string) error {
	_, err := s.sessionRepo.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return err
	}

	err = s.captionRepo.Delete(ctx, captionID, sessionID)
	if err != nil {
		return err
	}

	return nil
}

func (s *captionService) ListCaptions(ctx context.Context, sessionID, userID string) ([]models.Caption, error) {
	_, err := s.sessionRepo.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	captions, err := s.captionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return captions, nil
}
