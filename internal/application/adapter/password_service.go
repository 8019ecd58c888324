// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// Hash produces a salted hash of the plain-text password.
	Hash(password string) (string, error)

	// Compare checks a plain-text password against a stored hash.
	Compare(hash, password string) error
}
