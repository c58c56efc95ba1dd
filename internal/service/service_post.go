package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/validators"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// postService implements PostService on top of a PostRepository.
//
// Update and delete only require an authenticated caller. Ownership of the
// post is checked by postOwnershipService when it wraps this service.
type postService struct {
	postRepository store.PostRepository
	idGenerator    utils.IDGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, idGenerator utils.IDGenerator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		idGenerator:    idGenerator,
		validator:      validators.NewBlogValidator(),
		logger:         logger,
	}
}

// CreatePost stores post when its userId names the caller.
func (s *postService) CreatePost(ctx context.Context, callerID string, post models.NewPost) (models.Post, error) {
	log := logger.FromContext(ctx)

	if callerID == "" || callerID != post.UserID {
		log.Debug().Str("caller_id", callerID).Str("user_id", post.UserID).Msg("post creation for another user")
		return models.Post{}, ErrForbidden
	}

	if err := s.validator.Validate(ctx, post, validators.FieldUsername, validators.FieldTitle, validators.FieldDesc); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.postRepository.CreatePost(ctx, models.Post{
		ID:         s.idGenerator.Generate(),
		Username:   post.Username,
		Title:      post.Title,
		Desc:       post.Desc,
		Photo:      post.Photo,
		Categories: post.Categories,
	})
	if err != nil {
		log.Err(err).Str("username", post.Username).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

func (s *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	post, err := s.postRepository.FindPostByID(ctx, postID)
	if errors.Is(err, store.ErrNoPostWasFound) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrPostNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("post_id", postID).Msg("post search by id failed")
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}

	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, callerID, postID string, update models.PostUpdate) (models.Post, error) {
	if callerID == "" {
		return models.Post{}, ErrForbidden
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	post, err := s.postRepository.UpdatePost(ctx, postID, update)
	if errors.Is(err, store.ErrNoPostWasFound) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrPostNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("post_id", postID).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, callerID, postID string) error {
	if callerID == "" {
		return ErrForbidden
	}

	err := s.postRepository.DeletePost(ctx, postID)
	if errors.Is(err, store.ErrNoPostWasFound) {
		return fmt.Errorf("%w: %w", ErrPostNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("post_id", postID).Msg("post delete failed")
		return fmt.Errorf("post delete failed: %w", err)
	}

	return nil
}

// ListPosts returns the posts of filter.Username, else the posts tagged with
// filter.Category, else every post.
func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("username", filter.Username).
			Str("category", filter.Category).
			Msg("post listing failed")
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return posts, nil
}
