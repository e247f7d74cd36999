// Package articles provides PostgreSQL-backed persistence for the article
// resource collection.
package articles

import (
	"context"

	"github.com/dmitrijs2005/articlegate/internal/server/models"
)

// Repository is the persistence contract for articles. Update and Delete on
// a nonexistent id return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context) ([]*models.Article, error)
	Update(ctx context.Context, article *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}
