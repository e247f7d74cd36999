package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/articlegate/internal/common"
	"github.com/dmitrijs2005/articlegate/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (s *Server) abortInternal(c *gin.Context, msg string, err error) {
	s.logger.Error(c.Request.Context(), msg, "error", err.Error())
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
}

func (s *Server) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, messageResponse{Message: "Welcome to the articles API"})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, errorResponse{Detail: "Username already registered"})
			return
		}
		s.abortInternal(c, "error registering user", err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// token exchanges form-encoded credentials for a bearer token.
func (s *Server) token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	accessToken, err := s.users.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.Header("WWW-Authenticate", common.BearerChallenge)
			c.JSON(http.StatusUnauthorized, errorResponse{Detail: "Incorrect username or password"})
			return
		}
		s.abortInternal(c, "error logging in", err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

func (s *Server) currentUser(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// articleID parses the :id path parameter. A non-numeric id cannot name a
// stored article, so it is reported the same way as a missing one.
func articleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Detail: "Article not found"})
		return 0, false
	}
	return id, true
}

func (s *Server) listArticles(c *gin.Context) {
	result, err := s.articles.List(c.Request.Context())
	if err != nil {
		s.abortInternal(c, "error listing articles", err)
		return
	}

	resp := make([]articleResponse, 0, len(result))
	for _, a := range result {
		resp = append(resp, newArticleResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := s.articles.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Detail: "Article not found"})
			return
		}
		s.abortInternal(c, "error loading article", err)
		return
	}

	c.JSON(http.StatusOK, newArticleResponse(article))
}

func (s *Server) createArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	article, err := s.articles.Create(c.Request.Context(), req.Name, *req.Price)
	if err != nil {
		s.abortInternal(c, "error creating article", err)
		return
	}

	c.JSON(http.StatusCreated, newArticleResponse(article))
}

func (s *Server) updateArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	article, err := s.articles.Update(c.Request.Context(), id, services.ArticleUpdate{Name: req.Name, Price: *req.Price})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Detail: "Article not found"})
			return
		}
		s.abortInternal(c, "error updating article", err)
		return
	}

	c.JSON(http.StatusOK, newArticleResponse(article))
}

func (s *Server) deleteArticle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	if err := s.articles.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Detail: "Article not found"})
			return
		}
		s.abortInternal(c, "error deleting article", err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Article deleted"})
}
