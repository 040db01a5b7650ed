package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"myflix/internal/domain"
)

// TokenManager issues and verifies HS256 JWTs signed with a process-wide
// secret. Tokens are stateless: validity is signature + expiry, nothing else.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenManager(secret string, lifetime time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue mints a signed token for the given subject, expiring after the
// configured lifetime. The payload never carries the password hash.
func (t *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the token string and resolves the embedded subject.
// Rejections map onto the domain sentinels: missing, malformed, invalid
// signature, expired.
func (t *TokenManager) Verify(tokenString string) (*domain.AuthClaims, error) {
	if tokenString == "" {
		return nil, domain.ErrTokenMissing
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(_ *jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, domain.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrTokenExpired
	case err != nil, !token.Valid:
		return nil, domain.ErrTokenInvalid
	}

	resolved := &domain.AuthClaims{Username: claims.Subject}
	if claims.IssuedAt != nil {
		resolved.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		resolved.ExpiresAt = claims.ExpiresAt.Time
	}

	return resolved, nil
}
