package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"myflix/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &UserRepository{db: db}
}

const selectUser = `
	SELECT
		u.id, u.username, u.password_hash, u.email, u.birthday, u.created_at, u.updated_at,
		COALESCE(array_agg(f.movie_id) FILTER (WHERE f.movie_id IS NOT NULL), '{}')
	FROM users u
	LEFT JOIN favorites f ON f.user_id = u.id
`

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := selectUser + ` GROUP BY u.id ORDER BY u.username`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := selectUser + ` WHERE u.username = $1 GROUP BY u.id`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, password_hash, email, birthday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.Email,
		user.Birthday,
		now,
		now,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	user.Favorites = []uuid.UUID{}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User, username string) error {
	query := `
		UPDATE users
		SET username = $1, password_hash = $2, email = $3, birthday = $4, updated_at = $5
		WHERE username = $6
	`

	tag, err := r.db.Exec(ctx, query,
		user.Username,
		user.Password,
		user.Email,
		user.Birthday,
		time.Now().UTC(),
		username,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) AddFavorite(ctx context.Context, username string, movieID uuid.UUID) error {
	query := `
		INSERT INTO favorites (user_id, movie_id)
		SELECT u.id, $2 FROM users u WHERE u.username = $1
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, username, movieID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrMovieNotFound
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, username string, movieID uuid.UUID) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = (SELECT id FROM users WHERE username = $1) AND movie_id = $2
	`

	if _, err := r.db.Exec(ctx, query, username, movieID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.Birthday,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Favorites,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
