package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/dbx"
	"github.com/dmitrijs2005/articlegate/internal/server/models"
	"github.com/dmitrijs2005/articlegate/internal/server/repositories/articles"
	"github.com/dmitrijs2005/articlegate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/articlegate/internal/server/repositories/users"
)

// ---- in-memory fakes ----

type memUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*models.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byName: map[string]*models.User{}}
}

func (r *memUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[user.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.byName[user.Username] = &cp
	return user, nil
}

func (r *memUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUsersRepo) delete(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byName, username)
}

type memArticlesRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.Article
}

func newMemArticlesRepo() *memArticlesRepo {
	return &memArticlesRepo{byID: map[int64]*models.Article{}}
}

func (r *memArticlesRepo) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	article.ID = r.nextID
	cp := *article
	r.byID[article.ID] = &cp
	return article, nil
}

func (r *memArticlesRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memArticlesRepo) List(ctx context.Context) ([]*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*models.Article, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if a, ok := r.byID[id]; ok {
			cp := *a
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *memArticlesRepo) Update(ctx context.Context, article *models.Article) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[article.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	cp := *article
	r.byID[article.ID] = &cp
	return article, nil
}

func (r *memArticlesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeRepoManager struct {
	users    *memUsersRepo
	articles *memArticlesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: newMemUsersRepo(), articles: newMemArticlesRepo()}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }

func (m *fakeRepoManager) Articles(db dbx.DBTX) articles.Repository { return m.articles }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
