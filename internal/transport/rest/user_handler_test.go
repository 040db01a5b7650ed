package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"myflix/internal/domain"
)

func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for key, value := range params {
		req.SetPathValue(key, value)
	}
	return req
}

func TestUserShowNotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrUserNotFound})

	req := newRequest(http.MethodGet, "/users/ghost", "", map[string]string{"username": "ghost"})
	rec := httptest.NewRecorder()
	h.Show(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserUpdateSuccess(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		user: &domain.User{ID: uuid.New(), Username: "alice2", Email: "a@x.com"},
	})

	req := newRequest(http.MethodPut, "/users/alice1",
		`{"username":"alice2","password":"NewS3cret!","email":"a@x.com"}`,
		map[string]string{"username": "alice1"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"alice2"`)
}

func TestUserUpdateValidation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	req := newRequest(http.MethodPut, "/users/alice1",
		`{"username":"abc","password":"p","email":"a@x.com"}`,
		map[string]string{"username": "alice1"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUserDestroy(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	req := newRequest(http.MethodDelete, "/users/alice1", "", map[string]string{"username": "alice1"})
	rec := httptest.NewRecorder()
	h.Destroy(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "alice1 was deleted")
}

func TestUserAddFavoriteInvalidMovieID(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	req := newRequest(http.MethodPost, "/users/alice1/movies/not-a-uuid", "",
		map[string]string{"username": "alice1", "movieID": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.AddFavorite(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserAddFavoriteUnknownMovie(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrMovieNotFound})

	movieID := uuid.NewString()
	req := newRequest(http.MethodPost, "/users/alice1/movies/"+movieID, "",
		map[string]string{"username": "alice1", "movieID": movieID})
	rec := httptest.NewRecorder()
	h.AddFavorite(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserRemoveFavorite(t *testing.T) {
	movieID := uuid.New()
	h := NewUserHandler(&stubUserService{
		user: &domain.User{Username: "alice1", Favorites: []uuid.UUID{}},
	})

	req := newRequest(http.MethodDelete, "/users/alice1/movies/"+movieID.String(), "",
		map[string]string{"username": "alice1", "movieID": movieID.String()})
	rec := httptest.NewRecorder()
	h.RemoveFavorite(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "removed from favorites")
}
