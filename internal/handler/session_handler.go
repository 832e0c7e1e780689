package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"captionstudio/internal/models"
	"captionstudio/internal/repository"
)

type SessionResponse struct {
	SessionId      string    `json:"sessionId"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	CoreMessage    *string   `json:"coreMessage"`
	TargetAudience *string   `json:"targetAudience"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type SessionsListResponse struct {
	Items []models.CaptionSession `json:"items"`
	Total int                     `json:"total"`
}

func sessionResponse(session *models.CaptionSession) SessionResponse {
	return SessionResponse{
		SessionId:      session.SessionID,
		Name:           session.Name,
		Description:    session.Description,
		CoreMessage:    session.CoreMessage,
		TargetAudience: session.TargetAudience,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
}

func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet { // if get, then we list the sessions
		h.ListSessions(w, r)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name           string  `json:"name" validate:"required,min=1"`
		Description    *string `json:"description"`
		CoreMessage    *string `json:"coreMessage"`
		TargetAudience *string `json:"targetAudience"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// checking the name of the session
	if req.Name == "" {
		WriteError(w, "Отсутствует название сессии", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	serviceReq := repository.CreateSessionRequest{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		CoreMessage:    req.CoreMessage,
		TargetAudience: req.TargetAudience,
	}

	// creating a session
	session, err := h.SessionService.CreateSession(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// forming the response
	WriteSuccess(w, sessionResponse(session), http.StatusCreated)
}

func (h *Handlers) UpdateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	var req struct {
		Name           *string `json:"name" validate:"omitempty,min=1"`
		Description    *string `json:"description"`
		CoreMessage    *string `json:"coreMessage"`
		TargetAudience *string `json:"targetAudience"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateSessionRequest{
		SessionID:      sessionID,
		Name:           req.Name,
		Description:    req.Description,
		CoreMessage:    req.CoreMessage,
		TargetAudience: req.TargetAudience,
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

	// updating the session
	session, err := h.SessionService.UpdateSession(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, sessionResponse(session), http.StatusOK)
}

func (h *Handlers) ListSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	sessions, err := h.SessionService.ListSessions(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if sessions == nil {
		sessions = []models.CaptionSession{}
	}

	// forming the response
	WriteSuccess(w, SessionsListResponse{
		Items: sessions,
		Total: len(sessions),
	}, http.StatusOK)
}
