package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"myflix/internal/core/auth"
	"myflix/internal/domain"
)

type memRepo struct {
	users map[string]*domain.User
}

func newMemRepo(seed ...*domain.User) *memRepo {
	r := &memRepo{users: make(map[string]*domain.User)}
	for _, u := range seed {
		r.users[u.Username] = u
	}
	return r
}

func (r *memRepo) List(_ context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *memRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *memRepo) Create(_ context.Context, u *domain.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *memRepo) Update(_ context.Context, u *domain.User, username string) error {
	existing, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ID = existing.ID
	u.Favorites = existing.Favorites
	delete(r.users, username)
	r.users[u.Username] = u
	return nil
}

func (r *memRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

func (r *memRepo) AddFavorite(_ context.Context, username string, movieID uuid.UUID) error {
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favorites = append(u.Favorites, movieID)
	return nil
}

func (r *memRepo) RemoveFavorite(_ context.Context, username string, movieID uuid.UUID) error {
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.Favorites[:0]
	for _, id := range u.Favorites {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	u.Favorites = kept
	return nil
}

func TestServiceUpdateRehashesPassword(t *testing.T) {
	repo := newMemRepo(&domain.User{ID: uuid.New(), Username: "alice1", Password: "old-hash"})
	svc := NewService(repo, auth.NewPasswordHasher(bcrypt.MinCost))

	updated, err := svc.Update(context.Background(), domain.UserSaveRequest{
		Username: "alice2",
		Password: "NewS3cret!",
		Email:    "a@x.com",
	}, "alice1")
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("NewS3cret!")))

	_, err = svc.Get(context.Background(), "alice1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestServiceUpdateUnknownUser(t *testing.T) {
	svc := NewService(newMemRepo(), auth.NewPasswordHasher(bcrypt.MinCost))

	_, err := svc.Update(context.Background(), domain.UserSaveRequest{
		Username: "alice1",
		Password: "S3cret!",
		Email:    "a@x.com",
	}, "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestServiceFavoritesRoundTrip(t *testing.T) {
	movieID := uuid.New()
	repo := newMemRepo(&domain.User{ID: uuid.New(), Username: "alice1"})
	svc := NewService(repo, auth.NewPasswordHasher(bcrypt.MinCost))

	withFavorite, err := svc.AddFavorite(context.Background(), "alice1", movieID)
	require.NoError(t, err)
	require.Contains(t, withFavorite.Favorites, movieID)

	without, err := svc.RemoveFavorite(context.Background(), "alice1", movieID)
	require.NoError(t, err)
	require.NotContains(t, without.Favorites, movieID)
}
