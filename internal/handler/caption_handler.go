package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"captionstudio/internal/models"
	"captionstudio/internal/repository"
)

type CaptionResponse struct {
	CaptionId    string    `json:"captionId"`
	SessionId    string    `json:"sessionId"`
	Platform     *string   `json:"platform"`
	Tone         *string   `json:"tone"`
	VariantLabel *string   `json:"variantLabel"`
	CaptionText  string    `json:"captionText"`
	Hashtags     *string   `json:"hashtags"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CaptionsListResponse struct {
	Items []models.Caption `json:"items"`
	Total int              `json:"total"`
}

func captionResponse(caption *models.Caption) CaptionResponse {
	return CaptionResponse{
		CaptionId:    caption.CaptionID,
		SessionId:    caption.SessionID,
		Platform:     caption.Platform,
		Tone:         caption.Tone,
		VariantLabel: caption.VariantLabel,
		CaptionText:  caption.CaptionText,
		Hashtags:     caption.Hashtags,
		CreatedAt:    caption.CreatedAt,
	}
}

func (h *Handlers) CreateCaption(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet { // if get, then we list the captions
		h.ListCaptions(w, r)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	var req struct {
		TemplateId   *string `json:"templateId"`
		Platform     *string `json:"platform"`
		Tone         *string `json:"tone"`
		VariantLabel *string `json:"variantLabel"`
		CaptionText  string  `json:"captionText" validate:"required,min=1"`
		Hashtags     *string `json:"hashtags"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// checking the text of the caption
	if req.CaptionText == "" {
		WriteError(w, "Отсутствует текст подписи", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	serviceReq := repository.CreateCaptionRequest{
		SessionID:    sessionID,
		UserID:       userID,
		TemplateID:   req.TemplateId,
		Platform:     req.Platform,
		Tone:         req.Tone,
		VariantLabel: req.VariantLabel,
		CaptionText:  req.CaptionText,
		Hashtags:     req.Hashtags,
	}

	// creating a caption
	caption, err := h.CaptionService.CreateCaption(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// forming the response
	WriteSuccess(w, captionResponse(caption), http.StatusCreated)
}

func (h *Handlers) UpdateCaption(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodDelete { // if delete, then we delete the caption
		h.DeleteCaption(w, r)
		return
	}

	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	captionID := vars["captionId"]
	if sessionID == "" || captionID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	var req struct {
		Platform     *string `json:"platform"`
		Tone         *string `json:"tone"`
		VariantLabel *string `json:"variantLabel"`
		CaptionText  *string `json:"captionText" validate:"omitempty,min=1"`
		Hashtags     *string `json:"hashtags"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateCaptionRequest{
		CaptionID:    captionID,
		SessionID:    sessionID,
		Platform:     req.Platform,
		Tone:         req.Tone,
		VariantLabel: req.VariantLabel,
		CaptionText:  req.CaptionText,
		Hashtags:     req.Hashtags,
	}

	// the patch must carry at least one field
	if !serviceReq.HasUpdates() {
		WriteError(w, "Не указано ни одно поле для обновления", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}
	serviceReq.UserID = userID

	// updating the caption
	caption, err := h.CaptionService.UpdateCaption(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, captionResponse(caption), http.StatusOK)
}

func (h *Handlers) DeleteCaption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	captionID := vars["captionId"]
	if sessionID == "" || captionID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// deleting the caption
	if err := h.CaptionService.DeleteCaption(r.Context(), captionID, sessionID, userID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handlers) ListCaptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	captions, err := h.CaptionService.ListCaptions(r.Context(), sessionID, userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if captions == nil {
		captions = []models.Caption{}
	}

	// forming the response
	WriteSuccess(w, CaptionsListResponse{
		Items: captions,
		Total: len(captions),
	}, http.StatusOK)
}
