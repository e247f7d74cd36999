package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/dbx"
	"github.com/dmitrijs2005/articlegate/internal/server/models"
)

// PostgresRepository implements article storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an article and returns it with the store-assigned ID.
func (r *PostgresRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {

	query :=
		`INSERT INTO articles (name, price)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, article.Name, article.Price).Scan(&article.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

// GetByID returns the article with the given id or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query :=
		`SELECT id, name, price FROM articles
		 WHERE id = $1
		 `

	article := &models.Article{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&article.ID, &article.Name, &article.Price)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return article, nil
}

// List returns all articles ordered by id.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Article, error) {
	query :=
		`SELECT id, name, price FROM articles
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Article
	for rows.Next() {
		var item models.Article
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update replaces the name and price of the article with the given ID.
// Updating a nonexistent article yields common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, article *models.Article) (*models.Article, error) {
	query :=
		`UPDATE articles SET name = $1, price = $2
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, article.Name, article.Price, article.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return article, nil
	case 0:
		return nil, common.ErrorNotFound
	default:
		return nil, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes the article with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM articles
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
