package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"captionstudio/internal/errs"
)

// ErrorBody - машинный код и человеческое сообщение
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse - стандартный успешный ответ
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    codeForStatus(statusCode),
			Message: message,
		},
	})
}

// WriteAppError - отправка ошибки сервиса, статус выбирается по её виду
func WriteAppError(w http.ResponseWriter, err error) {
	kind := errs.KindOf(err)

	message := err.Error()
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusForKind(kind))
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    string(kind),
			Message: message,
		},
	})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func statusForKind(kind errs.Kind) int {
	switch kind {
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func codeForStatus(statusCode int) string {
	switch statusCode {
	case http.StatusUnauthorized:
		return string(errs.KindUnauthorized)
	case http.StatusNotFound:
		return string(errs.KindNotFound)
	case http.StatusForbidden:
		return string(errs.KindForbidden)
	case http.StatusBadRequest, http.StatusMethodNotAllowed:
		return string(errs.KindInvalidInput)
	default:
		return string(errs.KindInternal)
	}
}
