package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt cost used when none is configured.
const DefaultPasswordHashCost = 10

// HashPassword computes a salted bcrypt hash of password.
//
// Every call generates a fresh random salt, so hashing the same password
// twice yields different strings. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] falls back to [DefaultPasswordHashCost].
//
// Returns an error if the password is longer than 72 bytes or the hash
// cannot be produced.
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret!", 10)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
//
// A malformed hash is reported as an error; a well-formed hash that does not
// match is reported as false with a nil error.
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password hash: %w", err)
	}
}
