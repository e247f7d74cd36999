package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyPasswordHash is a syntactically valid bcrypt digest that matches no
// real credential. Login flows verify against it when the username does not
// exist, so the unknown-user path costs the same as a wrong password.
const DummyPasswordHash = "$2a$10$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// HashPassword produces a salted bcrypt digest of the plaintext password.
// Two calls on the same input yield different digests; both verify.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether password is the input that produced digest.
// The underlying comparison is constant-time. A malformed digest (wrong
// algorithm, truncated, empty) reports false rather than a separate error.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
