// Package auth provides password hashing and verification for user records.
package auth

import (
	"github.com/warblerapp/warbler/internal/apperror"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt. The salt is random
// per call, so hashing the same password twice yields different digests;
// compare with CheckPassword, never with string equality.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperror.Validation("password", "password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt digest.
// A malformed digest counts as a mismatch rather than an error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
