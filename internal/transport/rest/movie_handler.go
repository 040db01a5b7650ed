package rest

import (
	"errors"
	"net/http"

	"myflix/internal/domain"
)

type MovieHandler struct {
	svc domain.MovieService
}

func NewMovieHandler(svc domain.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

func (h *MovieHandler) Index(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    movies,
	})
}

func (h *MovieHandler) Show(w http.ResponseWriter, r *http.Request) {
	movie, err := h.svc.GetByTitle(r.Context(), r.PathValue("title"))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			JSONError(w, http.StatusNotFound, "Movie not found")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    movie,
	})
}

func (h *MovieHandler) Genre(w http.ResponseWriter, r *http.Request) {
	genre, err := h.svc.GetGenre(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			JSONError(w, http.StatusNotFound, "Genre not found")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    genre,
	})
}

func (h *MovieHandler) Director(w http.ResponseWriter, r *http.Request) {
	director, err := h.svc.GetDirector(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			JSONError(w, http.StatusNotFound, "Director not found")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    director,
	})
}
