package store

import (
	"context"
	"io"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists blog accounts.
type UserRepository interface {
	// CreateUser inserts user as given (id, encrypted password and
	// timestamps already set) and returns the stored row.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the exact username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser applies update to the user and, when the username changes,
	// renames every post of the old username in the same transaction.
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)

	// DeleteUser removes every post of the user and then the user itself in
	// one transaction. Returns ErrNoUserWasFound when the user is missing.
	DeleteUser(ctx context.Context, userID string) error
}

// PostRepository persists blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
}

// FileStorage keeps uploaded images on disk.
type FileStorage interface {
	// Save writes the content of r under name, replacing an existing file.
	// It returns the number of bytes written.
	Save(ctx context.Context, name string, r io.Reader) (int64, error)

	// Dir returns the directory files are stored in.
	Dir() string
}
