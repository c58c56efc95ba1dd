package service

import (
	"context"
	"io"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// TokenService issues and verifies access tokens.
type TokenService interface {
	// Issue signs a token for userID that expires after the configured
	// duration.
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify checks signature, issuer and expiry of token and returns the
	// identity it carries. Any failure yields an error matching
	// ErrInvalidToken.
	Verify(ctx context.Context, token string) (models.Token, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, callerID, userID string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, callerID, userID string) error
}

type PostService interface {
	CreatePost(ctx context.Context, callerID string, post models.NewPost) (models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, callerID, postID string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, callerID, postID string) error
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
}

type UploadService interface {
	Upload(ctx context.Context, name string, r io.Reader) (int64, error)

	// Dir returns the directory uploaded files are served from.
	Dir() string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// ownership checks.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}
