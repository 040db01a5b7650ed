// Package movie
package movie

import (
	"context"

	"myflix/internal/domain"
)

// Cache is an optional read-through layer over the catalog. The catalog has
// no mutation surface, so entries only ever age out by TTL.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type service struct {
	repo  domain.MovieRepository
	cache Cache
}

func NewService(repo domain.MovieRepository, cache Cache) domain.MovieService {
	return &service{
		repo:  repo,
		cache: cache,
	}
}

func (s *service) List(ctx context.Context) ([]*domain.Movie, error) {
	var cached []*domain.Movie
	if s.lookup(ctx, "movies:all", &cached) {
		return cached, nil
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.store(ctx, "movies:all", movies)
	return movies, nil
}

func (s *service) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	var cached domain.Movie
	if s.lookup(ctx, "movies:title:"+title, &cached) {
		return &cached, nil
	}

	m, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	s.store(ctx, "movies:title:"+title, m)
	return m, nil
}

func (s *service) GetGenre(ctx context.Context, genreName string) (*domain.Genre, error) {
	m, err := s.repo.GetByGenre(ctx, genreName)
	if err != nil {
		return nil, err
	}
	return &m.Genre, nil
}

func (s *service) GetDirector(ctx context.Context, directorName string) (*domain.Director, error) {
	m, err := s.repo.GetByDirector(ctx, directorName)
	if err != nil {
		return nil, err
	}
	return &m.Director, nil
}

// lookup reports a usable cache hit. Cache failures count as misses so the
// store stays the source of truth.
func (s *service) lookup(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	return err == nil && hit
}

func (s *service) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, value)
}
