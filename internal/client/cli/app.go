// Package cli implements the interactive command-line client. It wraps the
// HTTP API client in a small REPL with prompts for credentials and article
// fields.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/articlegate/internal/client/api"
	"github.com/dmitrijs2005/articlegate/internal/client/config"
)

// apiIface is the surface of the HTTP client the CLI uses. The real
// api.Client satisfies it; tests can provide a stub.
type apiIface interface {
	IsAuthenticated() bool
	Logout()
	Register(ctx context.Context, username, email, password string) (*api.User, error)
	Login(ctx context.Context, username, password string) error
	CurrentUser(ctx context.Context) (*api.User, error)
	ListArticles(ctx context.Context) ([]api.Article, error)
	GetArticle(ctx context.Context, id int64) (*api.Article, error)
	CreateArticle(ctx context.Context, name string, price float64) (*api.Article, error)
	UpdateArticle(ctx context.Context, id int64, name string, price float64) (*api.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

type App struct {
	config   *config.Config
	api      apiIface
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.New(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

// status is shown in the REPL prompt.
func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}
