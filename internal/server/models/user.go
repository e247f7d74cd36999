// Package models defines the server-side domain records persisted by the
// repositories.
package models

import "time"

// User is a registered principal. PasswordHash is an opaque bcrypt digest;
// the plaintext password never leaves the service layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
}
