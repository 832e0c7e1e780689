package service

import (
	"captionstudio/internal/config"
	"captionstudio/internal/repository"
	"captionstudio/internal/storage"
)

type Service struct {
	Auth     AuthService
	Session  SessionService
	Caption  CaptionService
	Template TemplateService
	Media    MediaService
	Tables   TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		Session:  NewSessionService(rep.Session, cfg),
		Caption:  NewCaptionService(rep.Caption, rep.Session, rep.Template, cfg),
		Template: NewTemplateService(rep.Template, cfg),
		Media:    NewMediaService(rep.Media, rep.Session, storage, cfg),
		Tables:   NewTablesService(rep.Tables),
	}
}
