package rest

import (
	"context"

	"github.com/google/uuid"

	"myflix/internal/domain"
)

type stubAuthService struct {
	loginRes *domain.AuthResponse
	loginErr error
	regUser  *domain.User
	regErr   error
	claims   *domain.AuthClaims
	authErr  error
}

func (s *stubAuthService) Login(_ context.Context, _ domain.LoginRequest) (*domain.AuthResponse, error) {
	return s.loginRes, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, _ domain.UserSaveRequest) (*domain.User, error) {
	return s.regUser, s.regErr
}

func (s *stubAuthService) Authorize(_ string) (*domain.AuthClaims, error) {
	return s.claims, s.authErr
}

type stubUserService struct {
	user *domain.User
	list []*domain.User
	err  error
}

func (s *stubUserService) List(_ context.Context) ([]*domain.User, error) {
	return s.list, s.err
}

func (s *stubUserService) Get(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Update(_ context.Context, _ domain.UserSaveRequest, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Delete(_ context.Context, _ string) error {
	return s.err
}

func (s *stubUserService) AddFavorite(_ context.Context, _ string, _ uuid.UUID) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) RemoveFavorite(_ context.Context, _ string, _ uuid.UUID) (*domain.User, error) {
	return s.user, s.err
}

type stubMovieService struct {
	movies []*domain.Movie
	movie  *domain.Movie
	err    error
}

func (s *stubMovieService) List(_ context.Context) ([]*domain.Movie, error) {
	return s.movies, s.err
}

func (s *stubMovieService) GetByTitle(_ context.Context, _ string) (*domain.Movie, error) {
	return s.movie, s.err
}

func (s *stubMovieService) GetGenre(_ context.Context, _ string) (*domain.Genre, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.movie.Genre, nil
}

func (s *stubMovieService) GetDirector(_ context.Context, _ string) (*domain.Director, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.movie.Director, nil
}
