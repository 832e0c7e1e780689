package handlers

import (
	"net/http"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// get user by id
	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// forming the response
	WriteSuccess(w, UserResponse{
		UserId: user.UserID,
		Email:  user.Email,
	}, http.StatusOK)
}
