package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"myflix/internal/domain"

	"github.com/google/uuid"
)

type UserHandler struct {
	svc domain.UserService
}

func NewUserHandler(svc domain.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    users,
	})
}

func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			JSONError(w, http.StatusNotFound, "User not found")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    user,
	})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UserSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	user, err := h.svc.Update(r.Context(), req, r.PathValue("username"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			JSONError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrUsernameTaken):
			JSONError(w, http.StatusConflict, "Username already exists")
		default:
			JSONError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "User updated successfully",
		Data:    user,
	})
}

func (h *UserHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if err := h.svc.Delete(r.Context(), username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			JSONError(w, http.StatusNotFound, "User not found")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: username + " was deleted",
	})
}

func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.saveFavorite(w, r, h.svc.AddFavorite, "Movie added to favorites")
}

func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.saveFavorite(w, r, h.svc.RemoveFavorite, "Movie removed from favorites")
}

func (h *UserHandler) saveFavorite(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, username string, movieID uuid.UUID) (*domain.User, error),
	message string,
) {
	movieID, err := uuid.Parse(r.PathValue("movieID"))
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	user, err := op(r.Context(), r.PathValue("username"), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			JSONError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrMovieNotFound):
			JSONError(w, http.StatusNotFound, "Movie not found")
		default:
			JSONError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: message,
		Data:    user,
	})
}
