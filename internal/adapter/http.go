package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP implementation of [APIAdapter] for the
// server at address. A bare host:port is treated as http.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAPIAdapter(address string, timeout time.Duration, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var out models.RegisterResponse
	if err := h.do(h.jsonRequest(ctx, req), "POST", "/api/auth/register", &out); err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	return out.User, nil
}

func (h *httpAPIAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var out models.LoginResponse
	if err := h.do(h.jsonRequest(ctx, req), "POST", "/api/auth/login", &out); err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	h.SetToken(out.AccessToken)
	h.logger.Debug().Str("user_id", out.User.ID).Msg("logged in")

	return out.User, nil
}

func (h *httpAPIAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	if err := h.do(h.request(ctx), "GET", "/api/users/"+url.PathEscape(userID), &user); err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	return user, nil
}

func (h *httpAPIAdapter) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	var user models.User
	if err := h.do(h.jsonRequest(ctx, update), "PUT", "/api/users/update/"+url.PathEscape(userID), &user); err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	return user, nil
}

func (h *httpAPIAdapter) DeleteUser(ctx context.Context, userID string) error {
	if err := h.do(h.request(ctx), "DELETE", "/api/users/delete/"+url.PathEscape(userID), nil); err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return nil
}

func (h *httpAPIAdapter) CreatePost(ctx context.Context, post models.NewPost) (models.Post, error) {
	var created models.Post
	if err := h.do(h.jsonRequest(ctx, post), "POST", "/api/posts/createpost", &created); err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	return created, nil
}

func (h *httpAPIAdapter) GetPost(ctx context.Context, postID string) (models.Post, error) {
	var post models.Post
	if err := h.do(h.request(ctx), "GET", "/api/posts/"+url.PathEscape(postID), &post); err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	return post, nil
}

func (h *httpAPIAdapter) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	var post models.Post
	if err := h.do(h.jsonRequest(ctx, update), "PUT", "/api/posts/update/"+url.PathEscape(postID), &post); err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	return post, nil
}

func (h *httpAPIAdapter) DeletePost(ctx context.Context, postID string) error {
	if err := h.do(h.request(ctx), "DELETE", "/api/posts/delete/"+url.PathEscape(postID), nil); err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}
	return nil
}

func (h *httpAPIAdapter) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	req := h.request(ctx)
	if filter.Username != "" {
		req.SetQueryParam("user", filter.Username)
	}
	if filter.Category != "" {
		req.SetQueryParam("cat", filter.Category)
	}

	var posts []models.Post
	if err := h.do(req, "GET", "/api/posts", &posts); err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	return posts, nil
}

func (h *httpAPIAdapter) UploadImage(ctx context.Context, name string, r io.Reader) error {
	req := h.request(ctx).
		SetFormData(map[string]string{"name": name}).
		SetFileReader("file", name, r)

	if err := h.do(req, "POST", "/api/upload", nil); err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	return nil
}

func (h *httpAPIAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// request returns a request carrying the stored bearer token, if any.
func (h *httpAPIAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpAPIAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// do executes req and decodes a successful JSON response into out when out
// is not nil.
func (h *httpAPIAdapter) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
