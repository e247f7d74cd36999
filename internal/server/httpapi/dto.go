package httpapi

import "github.com/dmitrijs2005/articlegate/internal/server/models"

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"is_active"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Active: u.Active}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// articleRequest is used for both create and full-replace update. Price is a
// pointer so that a missing field is distinguishable from an explicit zero.
type articleRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type articleResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func newArticleResponse(a *models.Article) articleResponse {
	return articleResponse{ID: a.ID, Name: a.Name, Price: a.Price}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}
