package handlers

import (
	"github.com/go-playground/validator/v10"

	"captionstudio/internal/config"
	"captionstudio/internal/repository"
	"captionstudio/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	UserRepo        repository.UserRepository
	SessionService  service.SessionService
	CaptionService  service.CaptionService
	TemplateService service.TemplateService
	MediaService    service.MediaService
	TablesRepo      repository.TablesRepository
	TablesService   service.TablesService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     service.Auth,
		UserRepo:        repo.User,
		SessionService:  service.Session,
		CaptionService:  service.Caption,
		TemplateService: service.Template,
		MediaService:    service.Media,
		TablesRepo:      repo.Tables,
		TablesService:   service.Tables,
		Cfg:             config,
		Validate:        validator.New(),
	}
}
