package postgres

import (
	"context"
	"errors"
	"fmt"

	"myflix/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieRepository struct {
	db *pgxpool.Pool
}

func NewMovieRepository(db *pgxpool.Pool) domain.MovieRepository {
	return &MovieRepository{db: db}
}

const selectMovie = `
	SELECT
		id, title, description,
		genre_name, genre_description,
		director_name, director_bio,
		actors, image_path, featured
	FROM movies
`

func (r *MovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	rows, err := r.db.Query(ctx, selectMovie+` ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []*domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.getOne(ctx, selectMovie+` WHERE title = $1`, title)
}

func (r *MovieRepository) GetByGenre(ctx context.Context, genreName string) (*domain.Movie, error) {
	return r.getOne(ctx, selectMovie+` WHERE genre_name = $1 LIMIT 1`, genreName)
}

func (r *MovieRepository) GetByDirector(ctx context.Context, directorName string) (*domain.Movie, error) {
	return r.getOne(ctx, selectMovie+` WHERE director_name = $1 LIMIT 1`, directorName)
}

func (r *MovieRepository) getOne(ctx context.Context, query string, arg any) (*domain.Movie, error) {
	movie, err := scanMovie(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	return movie, nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var movie domain.Movie

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Actors,
		&movie.ImagePath,
		&movie.Featured,
	)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}
