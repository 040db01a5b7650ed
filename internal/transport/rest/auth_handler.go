package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"myflix/internal/domain"
)

type AuthHandler struct {
	svc domain.AuthService
}

func NewAuthHandler(svc domain.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login exchanges a credential pair for a signed token. Unknown usernames and
// wrong passwords produce byte-identical responses.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			JSONError(w, http.StatusBadRequest, "Invalid username or password")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    res,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.UserSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	user, err := h.svc.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			JSONError(w, http.StatusConflict, "Username already exists")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusCreated, APIResponse{
		Message: "User registered successfully",
		Data:    user,
	})
}
