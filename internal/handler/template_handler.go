package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"captionstudio/internal/models"
	"captionstudio/internal/repository"
)

type TemplateResponse struct {
	TemplateId string    `json:"templateId"`
	UserId     *string   `json:"userId"`
	Name       string    `json:"name"`
	Platform   *string   `json:"platform"`
	Tone       *string   `json:"tone"`
	Body       string    `json:"body"`
	IsSystem   bool      `json:"isSystem"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TemplatesListResponse struct {
	Items []models.CaptionTemplate `json:"items"`
	Total int                      `json:"total"`
}

func templateResponse(template *models.CaptionTemplate) TemplateResponse {
	return TemplateResponse{
		TemplateId: template.TemplateID,
		UserId:     template.UserID,
		Name:       template.Name,
		Platform:   template.Platform,
		Tone:       template.Tone,
		Body:       template.Body,
		IsSystem:   template.IsSystem,
		CreatedAt:  template.CreatedAt,
	}
}

func (h *Handlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet { // if get, then we list the templates
		h.ListTemplates(w, r)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// isSystem is not accepted here, the api always stores false
	var req struct {
		Name     string  `json:"name" validate:"required,min=1"`
		Platform *string `json:"platform"`
		Tone     *string `json:"tone"`
		Body     string  `json:"body" validate:"required,min=1"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// checking the body of the template
	if req.Body == "" {
		WriteError(w, "Отсутствует текст шаблона", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	serviceReq := repository.CreateTemplateRequest{
		UserID:   userID,
		Name:     req.Name,
		Platform: req.Platform,
		Tone:     req.Tone,
		Body:     req.Body,
	}

	// creating a template
	template, err := h.TemplateService.CreateTemplate(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// forming the response
	WriteSuccess(w, templateResponse(template), http.StatusCreated)
}

func (h *Handlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// own templates plus the global ones
	templates, err := h.TemplateService.ListTemplates(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if templates == nil {
		templates = []models.CaptionTemplate{}
	}

	// forming the response
	WriteSuccess(w, TemplatesListResponse{
		Items: templates,
		Total: len(templates),
	}, http.StatusOK)
}
