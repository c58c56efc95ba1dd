// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the blog REST API.
//
// The primary abstraction is [APIAdapter], which hides request building,
// bearer-token management and the decoding of the API's response envelopes.
// The package ships an HTTP implementation built on resty
// ([NewHTTPAPIAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrForbidden] for
// 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter talks to a running blog backend.
type APIAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Login calls it on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and returns it. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates, stores the returned access token via SetToken and
	// returns the user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error

	CreatePost(ctx context.Context, post models.NewPost) (models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error

	// ListPosts returns the posts matching filter. Username wins over
	// Category on the server side.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	// UploadImage stores the contents of r on the server under name.
	UploadImage(ctx context.Context, name string, r io.Reader) error

	GetServerVersion(ctx context.Context) (string, error)
}
