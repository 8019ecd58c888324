// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/google/uuid"

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// Generate issues a signed access token for the user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token and returns the user ID it was issued for.
	Validate(token string) (uuid.UUID, error)
}
