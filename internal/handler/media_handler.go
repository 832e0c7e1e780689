package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"captionstudio/internal/models"
)

type MediaResponse struct {
	MediaId   string `json:"mediaId"`
	SessionId string `json:"sessionId"`
	MediaUrl  string `json:"mediaUrl"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	MimeType  string `json:"mimeType"`
	CreatedAt string `json:"createdAt"`
}

type MediaListResponse struct {
	Items []models.Media `json:"items"`
	Total int            `json:"total"`
}

func (h *Handlers) AttachMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet { // if get, then we list the media
		h.ListMedia(w, r)
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

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	// getting the file
	file, handler, err := r.FormFile("media")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// formats media
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	// check formats
	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	// attach media to the session
	media, err := h.MediaService.AttachMedia(r.Context(), sessionID, userID, handler.Filename, file, handler.Size)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// forming the response
	response := MediaResponse{
		MediaId:   media.MediaID,
		SessionId: media.SessionID,
		MediaUrl:  media.MediaURL,
		FileName:  handler.Filename,
		FileSize:  handler.Size,
		MimeType:  contentType,
		CreatedAt: media.CreatedAt.Format(time.RFC3339),
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	mediaID := vars["mediaId"]
	if sessionID == "" || mediaID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// delete media
	if err := h.MediaService.DeleteMedia(r.Context(), mediaID, sessionID, userID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, nil, http.StatusOK)
}

func (h *Handlers) ListMedia(w http.ResponseWriter, r *http.Request) {
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

	media, err := h.MediaService.ListMedia(r.Context(), sessionID, userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if media == nil {
		media = []models.Media{}
	}

	// forming the response
	WriteSuccess(w, MediaListResponse{
		Items: media,
		Total: len(media),
	}, http.StatusOK)
}
