// Package auth holds the security core: password hashing, token issuance and
// validation, identity resolution and the authorization policy. Everything in
// here is free of HTTP concerns.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

// HashPassword generates a salted bcrypt hash at the given cost. Cost zero
// (or any out-of-range value) falls back to bcrypt's default.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", domain.ErrInvalid
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches hash. The cost factor is
// encoded in the hash itself, so hashes produced at older costs keep
// verifying. A malformed hash never panics or errors, it just fails.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
