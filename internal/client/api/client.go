// Package api implements the HTTP client for the articlegate server. It
// keeps the bearer token obtained at login and attaches it to every request
// against protected endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/articlegate/internal/common"
)

const requestTimeout = 10 * time.Second

// User mirrors the server's user representation.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"is_active"`
}

// Article mirrors the server's article representation.
type Article struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Client talks to the articlegate HTTP API.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

// New constructs a Client for the given base URL, e.g. "http://localhost:8000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Token returns the bearer token stored by the last successful Login.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// IsAuthenticated reports whether a login has succeeded in this session.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

// Logout discards the stored bearer token.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// mapError converts an HTTP error response into a sentinel error, keeping the
// server-provided detail message where there is one.
func mapError(status int, detail string) error {
	var sentinel error
	switch status {
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	case http.StatusBadRequest:
		if strings.Contains(detail, "already registered") {
			sentinel = common.ErrorAlreadyExists
		}
	}
	if sentinel != nil {
		if detail != "" {
			return fmt.Errorf("%s: %w", detail, sentinel)
		}
		return sentinel
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	return fmt.Errorf("server error (%d): %s", status, detail)
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var e errorResponse
	_ = json.Unmarshal(body, &e)
	return mapError(resp.StatusCode, e.Detail)
}

// do executes a request, attaching the bearer token if present, and decodes
// a JSON response body into out (when out is non-nil).
func (c *Client) do(req *http.Request, out any) error {
	if token := c.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerSchemePrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// Register creates a new account on the server.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	in := map[string]string{"username": username, "email": email, "password": password}
	var u User
	if err := c.doJSON(ctx, http.MethodPost, "/register", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a bearer token and stores it for
// subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tok tokenResponse
	if err := c.do(req, &tok); err != nil {
		return err
	}

	c.setToken(tok.AccessToken)
	return nil
}

// CurrentUser returns the account the stored token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListArticles returns all articles.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var result []Article
	if err := c.doJSON(ctx, http.MethodGet, "/articles", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetArticle returns a single article by id.
func (c *Client) GetArticle(ctx context.Context, id int64) (*Article, error) {
	var a Article
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/articles/%d", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateArticle stores a new article.
func (c *Client) CreateArticle(ctx context.Context, name string, price float64) (*Article, error) {
	in := map[string]any{"name": name, "price": price}
	var a Article
	if err := c.doJSON(ctx, http.MethodPost, "/articles", in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateArticle replaces the fields of the article with the given id.
func (c *Client) UpdateArticle(ctx context.Context, id int64, name string, price float64) (*Article, error) {
	in := map[string]any{"name": name, "price": price}
	var a Article
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/articles/%d", id), in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteArticle removes the article with the given id.
func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	var m messageResponse
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/articles/%d", id), nil, &m)
}
