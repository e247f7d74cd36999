// Package users provides the credential store: persistence of registered
// principals keyed by username.
package users

import (
	"context"

	"github.com/dmitrijs2005/articlegate/internal/server/models"
)

// Repository is the persistence contract for principals. Create must be
// atomic with respect to the username uniqueness check: a duplicate insert
// is rejected by the store itself (common.ErrorAlreadyExists), never by a
// check-then-insert in application code.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
