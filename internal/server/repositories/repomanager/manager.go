package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/articlegate/internal/dbx"
	"github.com/dmitrijs2005/articlegate/internal/server/repositories/articles"
	"github.com/dmitrijs2005/articlegate/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a specific database handle
// (*sql.DB or an open transaction) and exposes the schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Articles(db dbx.DBTX) articles.Repository
}
