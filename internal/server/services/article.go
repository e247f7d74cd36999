package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/server/models"
	"github.com/dmitrijs2005/articlegate/internal/server/repositories/repomanager"
)

// ArticleUpdate carries the replacement field values for an article update.
// Fields are applied by direct assignment; there is no partial/reflective
// field copying.
type ArticleUpdate struct {
	Name  string
	Price float64
}

// ArticleService provides CRUD over the article collection. Authorization
// is the caller's concern: handlers gate every operation behind a
// successfully authenticated principal.
type ArticleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewArticleService constructs an ArticleService.
func NewArticleService(db *sql.DB, m repomanager.RepositoryManager) *ArticleService {
	return &ArticleService{db: db, repomanager: m}
}

// List returns all articles.
func (s *ArticleService) List(ctx context.Context) ([]*models.Article, error) {
	repo := s.repomanager.Articles(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing articles: %w", err)
	}
	return result, nil
}

// Get returns a single article by id, or common.ErrorNotFound.
func (s *ArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	repo := s.repomanager.Articles(s.db)
	article, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading article: %w", err)
	}
	return article, nil
}

// Create stores a new article and returns it with the assigned id.
func (s *ArticleService) Create(ctx context.Context, name string, price float64) (*models.Article, error) {
	repo := s.repomanager.Articles(s.db)
	article, err := repo.Create(ctx, &models.Article{Name: name, Price: price})
	if err != nil {
		return nil, fmt.Errorf("error creating article: %w", err)
	}
	return article, nil
}

// Update replaces the stored fields of the article with the given id.
// A missing id yields common.ErrorNotFound.
func (s *ArticleService) Update(ctx context.Context, id int64, upd ArticleUpdate) (*models.Article, error) {
	repo := s.repomanager.Articles(s.db)
	article, err := repo.Update(ctx, &models.Article{ID: id, Name: upd.Name, Price: upd.Price})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating article: %w", err)
	}
	return article, nil
}

// Delete removes the article with the given id, or common.ErrorNotFound.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Articles(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting article: %w", err)
	}
	return nil
}
