// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// accessClaims represents the claims carried by an access token.
type accessClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate issues a signed access token for the user.
func (s *tokenService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks a token and returns the user ID it was issued for.
func (s *tokenService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerror.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired token",
			err,
		)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok {
		return uuid.Nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"token carries no valid user id",
			err,
		)
	}

	return userID, nil
}
