// Package auth provides the authentication primitives of the server:
// bcrypt password hashing and HS256 token issuance/validation.
package auth

import (
	"time"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues a signed HS256 token asserting subject for the given
// ttl. The subject is carried in the registered "sub" claim, the expiry in
// "exp". Tokens are stateless: nothing is stored server-side.
func GenerateToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies the token's signature and expiry and returns
// the subject claim. Every failure mode (malformed encoding, signature
// mismatch, expiry, missing subject) collapses into common.ErrInvalidToken
// so callers cannot tell which check failed.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
