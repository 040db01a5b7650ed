package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrMovieNotFound = errors.New("movie not found")

type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Director struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type Movie struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       Genre     `json:"genre"`
	Director    Director  `json:"director"`
	Actors      []string  `json:"actors"`
	ImagePath   string    `json:"image_path"`
	Featured    bool      `json:"featured"`
}

type MovieRepository interface {
	List(ctx context.Context) ([]*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	GetByGenre(ctx context.Context, genreName string) (*Movie, error)
	GetByDirector(ctx context.Context, directorName string) (*Movie, error)
}

type MovieService interface {
	List(ctx context.Context) ([]*Movie, error)
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	GetGenre(ctx context.Context, genreName string) (*Genre, error)
	GetDirector(ctx context.Context, directorName string) (*Director, error)
}
