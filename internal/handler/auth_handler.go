package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"unicode/utf8"

	"captionstudio/internal/repository"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// present validate
	if h.Validate == nil {
		WriteError(w, "Validator is not initialized", http.StatusInternalServerError)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// email verification
	patternEmail := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, err := regexp.MatchString(patternEmail, req.Email)
	if err != nil || !matched {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	// password verification
	if utf8.RuneCountInString(req.Password) < 6 {
		WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// creating a form to create user
	serviceReq := repository.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
	}

	// registering a user in the service
	_, err = h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// logging
	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// forming the response
	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId: user.UserID,
			Email:  user.Email,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// logging
	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// a single message, no hint which part was wrong
		WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
		return
	}

	// forming the response
	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId: user.UserID,
			Email:  user.Email,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// token missing
	if req.RefreshToken == "" {
		WriteError(w, "Отсутствует refreshToken", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// update accessToken and refreshToken
	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId: user.UserID,
			Email:  user.Email,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}
