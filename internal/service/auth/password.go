package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when hashing passwords.
// 12 is a deliberate step above the library default.
const DefaultBcryptCost = 12

// PasswordVerifier defines the interface for hashing and comparing passwords.
type PasswordVerifier interface {
	// HashPassword returns the hash of the given plaintext password.
	HashPassword(password string) (string, error)

	// Compare checks the given plaintext password against a stored hash.
	// Returns nil on match and a non-nil error on mismatch or failure.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct {
	cost int
}

// Ensure BcryptVerifier implements PasswordVerifier interface
var _ PasswordVerifier = (*BcryptVerifier)(nil)

// NewBcryptVerifier creates a BcryptVerifier with the given cost.
// Costs outside bcrypt's supported range fall back to DefaultBcryptCost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptVerifier{cost: cost}
}

// HashPassword implements PasswordVerifier.HashPassword
func (v *BcryptVerifier) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare implements PasswordVerifier.Compare
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return err
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
