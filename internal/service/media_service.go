package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"captionstudio/internal/config"
	"captionstudio/internal/models"
	"captionstudio/internal/repository"
	"captionstudio/internal/storage"
)

type MediaService interface {
	AttachMedia(ctx context.Context, sessionID, userID, fileName string, file io.Reader, size int64) (*models.Media, error)
	ListMedia(ctx context.Context, sessionID, userID string) ([]models.Media, error)
	DeleteMedia(ctx context.Context, mediaID, sessionID, userID string) error
}

type mediaService struct {
	mediaRepo   repository.MediaRepository
	sessionRepo repository.SessionRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewMediaService(mediaRepo repository.MediaRepository, sessionRepo repository.SessionRepository, storage storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		sessionRepo: sessionRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *mediaService) AttachMedia(ctx context.Context, sessionID, userID, fileName string, file io.Reader, size int64) (*models.Media, error) {
	_, err := s.sessionRepo.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	objectName, mediaURL, err := s.storage.UploadMedia(ctx, sessionID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки медиафайла в MinIO: %w", err)
	}

	media := &models.Media{
		MediaID:   uuid.New().String(),
		SessionID: sessionID,
		MediaURL:  mediaURL,
		CreatedAt: time.Now(),
	}

	err = s.mediaRepo.Create(ctx, media)
	if err != nil {
		s.storage.DeleteMedia(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения медиафайла в БД: %w", err)
	}

	return media, nil
}

func (s *mediaService) ListMedia(ctx context.Context, sessionID, userID string) ([]models.Media, error) {
	_, err := s.sessionRepo.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	media, err := s.mediaRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return media, nil
}

func (s *mediaService) DeleteMedia(ctx context.Context, mediaID, sessionID, userID string) error {
	_, err := s.sessionRepo.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return err
	}

	media, err := s.mediaRepo.GetBySessionAndID(ctx, mediaID, sessionID)
	if err != nil {
		return err
	}

	// the url is scheme://endpoint/bucket/objectName
	parts := strings.SplitN(media.MediaURL, "/"+s.cfg.MinIO.BucketName+"/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("неверный формат URL медиафайла")
	}
	objectName := parts[1]

	if err := s.storage.DeleteMedia(ctx, objectName); err != nil {
		log.Printf("не удалось удалить медиафайл из MinIO: %v", err)
	}

	if err := s.mediaRepo.Delete(ctx, mediaID, sessionID); err != nil {
		return err
	}

	return nil
}
