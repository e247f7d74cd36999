// Package httpapi exposes the authentication and article operations over
// HTTP using a Gin engine. It is a thin transport layer: all business rules
// live in the services package.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/articlegate/internal/logging"
	"github.com/dmitrijs2005/articlegate/internal/server/models"
	"github.com/dmitrijs2005/articlegate/internal/server/services"
	"github.com/gin-gonic/gin"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// userSvc is the slice of the user service the HTTP layer depends on.
type userSvc interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

// articleSvc is the slice of the article service the HTTP layer depends on.
type articleSvc interface {
	List(ctx context.Context) ([]*models.Article, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	Create(ctx context.Context, name string, price float64) (*models.Article, error)
	Update(ctx context.Context, id int64, upd services.ArticleUpdate) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

// Server serves the HTTP API.
type Server struct {
	address  string
	users    userSvc
	articles articleSvc
	logger   logging.Logger
}

// NewServer constructs a Server listening on the given address.
func NewServer(a string, l logging.Logger, us userSvc, as articleSvc) (*Server, error) {
	return &Server{
		address:  a,
		logger:   l.With("module", "http_server"),
		users:    us,
		articles: as,
	}, nil
}

// Handler returns the fully wired HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.router()
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", s.welcome)
	r.POST("/register", s.register)
	r.POST("/token", s.token)

	authorized := r.Group("/", s.requireAuth())
	authorized.GET("/users/me", s.currentUser)

	arts := authorized.Group("/articles")
	arts.GET("", s.listArticles)
	arts.POST("", s.createArticle)
	arts.GET("/:id", s.getArticle)
	arts.PUT("/:id", s.updateArticle)
	arts.DELETE("/:id", s.deleteArticle)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
