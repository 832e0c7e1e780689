package service

import (
	"context"

	"captionstudio/internal/config"
	"captionstudio/internal/models"
	"captionstudio/internal/repository"
)

type SessionService interface {
	CreateSession(ctx context.Context, req repository.CreateSessionRequest) (*models.CaptionSession, error)
	UpdateSession(ctx context.Context, req repository.UpdateSessionRequest) (*models.CaptionSession, error)
	ListSessions(ctx context.Context, userID string) ([]models.CaptionSession, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewSessionService(sessionRepo repository.SessionRepository, cfg *config.Config) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, req repository.CreateSessionRequest) (*models.CaptionSession, error) {
	session := &models.CaptionSession{
		UserID:         req.UserID,
		Name:           req.Name,
		Description:    req.Description,
		CoreMessage:    req.CoreMessage,
		TargetAudience: req.TargetAudience,
	}

	err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, req repository.UpdateSessionRequest) (*models.CaptionSession, error) {
	session, err := s.sessionRepo.GetOwned(ctx, req.SessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	// nil means the field was absent from the patch
	if req.Name != nil {
		session.Name = *req.Name
	}
	if req.Description != nil {
		session.Description = req.Description
	}
	if req.CoreMessage != nil {
		session.CoreMessage = req.CoreMessage
	}
	if req.TargetAudience != nil {
		session.TargetAudience = req.TargetAudience
	}

	err = s.sessionRepo.Update(ctx, session)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, userID string) ([]models.CaptionSession, error) {
	sessions, err := s.sessionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
