// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and request authentication
// against stateless bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/server/auth"
	"github.com/dmitrijs2005/articlegate/internal/server/config"
	"github.com/dmitrijs2005/articlegate/internal/server/models"
	"github.com/dmitrijs2005/articlegate/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
//   - Register: create principals
//   - Login: verify credentials and mint a bearer token
//   - Authenticate: resolve a bearer token back into a principal
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register hashes the password and creates a new active principal. The
// uniqueness of the username is enforced by the store on insert; a collision
// surfaces as common.ErrorAlreadyExists. No token is issued on registration.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		Active:       true,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies the password against the stored digest and, on success,
// returns a signed bearer token asserting the username. Unknown usernames
// and wrong passwords fail with the same common.ErrorUnauthorized value; the
// unknown-user path still performs a bcrypt verification (against a dummy
// digest) so both failures cost the same.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.VerifyPassword(password, auth.DummyPasswordHash)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate validates a bearer token and resolves its subject to a stored
// principal. An invalid token and a subject that no longer resolves both
// fail with common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	subject, err := auth.GetSubjectFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
