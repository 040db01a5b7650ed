package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"myflix/internal/domain"
)

func postJSON(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginRes: &domain.AuthResponse{
			User:  &domain.User{ID: uuid.New(), Username: "alice1", Email: "a@x.com"},
			Token: "signed-token",
		},
	})

	rec := postJSON(h.Login, `{"username":"alice1","password":"S3cret!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"signed-token"`)
	require.Contains(t, rec.Body.String(), `"alice1"`)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestLoginFailureShapeIsUniform(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	ghost := postJSON(h.Login, `{"username":"ghostuser","password":"anything"}`)
	wrong := postJSON(h.Login, `{"username":"realuser","password":"wrong-password"}`)

	require.Equal(t, http.StatusBadRequest, ghost.Code)
	require.Equal(t, http.StatusBadRequest, wrong.Code)
	require.Equal(t, ghost.Body.String(), wrong.Body.String())
}

func TestLoginStoreFailureIsServerError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: errors.New("connection refused")})

	rec := postJSON(h.Login, `{"username":"alice1","password":"S3cret!"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection refused")
}

func TestLoginInvalidBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec := postJSON(h.Login, `{"username":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterSuccess(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		regUser: &domain.User{ID: uuid.New(), Username: "alice1", Email: "a@x.com"},
	})

	rec := postJSON(h.Register, `{"username":"alice1","password":"S3cret!","email":"a@x.com"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"alice1"`)
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "short username", body: `{"username":"abc","password":"p","email":"a@x.com"}`, field: "username"},
		{name: "non-alphanumeric username", body: `{"username":"al ice!","password":"p","email":"a@x.com"}`, field: "username"},
		{name: "missing password", body: `{"username":"alice1","email":"a@x.com"}`, field: "password"},
		{name: "bad email", body: `{"username":"alice1","password":"p","email":"nope"}`, field: "email"},
		{name: "bad birthday", body: `{"username":"alice1","password":"p","email":"a@x.com","birthday":"01.04.1990"}`, field: "birthday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(h.Register, tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			require.Contains(t, rec.Body.String(), `"`+tt.field+`"`)
		})
	}
}

func TestRegisterConflict(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{regErr: domain.ErrUsernameTaken})

	rec := postJSON(h.Register, `{"username":"alice1","password":"S3cret!","email":"a@x.com"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
}
