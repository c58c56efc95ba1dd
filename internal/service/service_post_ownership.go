package service

import (
	"context"
	"fmt"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// PostOwnershipService restricts post writes to the post's author.
//
// The author of a post is identified by its username, so the caller's
// username is looked up through the UserService on every write.
type PostOwnershipService struct {
	inner PostService
	users UserService
}

func NewPostOwnershipService(users UserService) PostServiceWrapper {
	return &PostOwnershipService{
		users: users,
	}
}

// CreatePost stamps the caller's username on the post before creating it.
func (p *PostOwnershipService) CreatePost(ctx context.Context, callerID string, post models.NewPost) (models.Post, error) {
	if callerID == "" || callerID != post.UserID {
		return models.Post{}, ErrForbidden
	}

	caller, err := p.users.GetUser(ctx, callerID)
	if err != nil {
		return models.Post{}, fmt.Errorf("caller lookup failed: %w", err)
	}
	post.Username = caller.Username

	return p.inner.CreatePost(ctx, callerID, post)
}

func (p *PostOwnershipService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return p.inner.GetPost(ctx, postID)
}

// UpdatePost also forbids moving a post to another username.
func (p *PostOwnershipService) UpdatePost(ctx context.Context, callerID, postID string, update models.PostUpdate) (models.Post, error) {
	caller, err := p.authorize(ctx, callerID, postID)
	if err != nil {
		return models.Post{}, err
	}

	if update.Username != nil && *update.Username != caller.Username {
		return models.Post{}, ErrForbidden
	}

	return p.inner.UpdatePost(ctx, callerID, postID, update)
}

func (p *PostOwnershipService) DeletePost(ctx context.Context, callerID, postID string) error {
	if _, err := p.authorize(ctx, callerID, postID); err != nil {
		return err
	}

	return p.inner.DeletePost(ctx, callerID, postID)
}

func (p *PostOwnershipService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	return p.inner.ListPosts(ctx, filter)
}

func (p *PostOwnershipService) Wrap(inner PostService) PostService {
	p.inner = inner
	return p
}

// authorize returns the caller when it is the author of postID.
func (p *PostOwnershipService) authorize(ctx context.Context, callerID, postID string) (models.User, error) {
	if callerID == "" {
		return models.User{}, ErrForbidden
	}

	post, err := p.inner.GetPost(ctx, postID)
	if err != nil {
		return models.User{}, err
	}

	caller, err := p.users.GetUser(ctx, callerID)
	if err != nil {
		return models.User{}, fmt.Errorf("caller lookup failed: %w", err)
	}

	if post.Username != caller.Username {
		logger.FromContext(ctx).Debug().
			Str("caller_id", callerID).
			Str("post_id", postID).
			Msg("post write by non-author")
		return models.User{}, ErrForbidden
	}

	return caller, nil
}
