package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Username, &p.Title, &p.Desc, &p.Photo, &p.Categories, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreatePost inserts post and returns the stored row.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.CreatedAt.IsZero() {
		post.CreatedAt = p.now().UTC()
	}
	post.UpdatedAt = post.CreatedAt

	query, args, err := buildCreatePostQuery(p.dialect, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, err
	}

	created, err := scanPost(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Str("username", post.Username).
			Msg("failed to insert post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindPostByID returns the post with the given id or [ErrNoPostWasFound].
func (p *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostByIDQuery(p.dialect, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPostByID").Msg("failed to build query")
		return models.Post{}, err
	}

	found, err := scanPost(p.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrNoPostWasFound
	case err != nil:
		log.Err(err).
			Str("func", "postRepository.FindPostByID").
			Str("post_id", postID).
			Msg("failed to find post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdatePost applies the non-nil fields of update and returns the post as
// stored after the update.
func (p *postRepository) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(p.dialect, postID, update, p.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("failed to build query")
		return models.Post{}, err
	}

	updated, err := scanPost(p.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrNoPostWasFound
	case err != nil:
		log.Err(err).
			Str("func", "postRepository.UpdatePost").
			Str("post_id", postID).
			Msg("failed to update post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeletePost removes the post with the given id. Returns
// [ErrNoPostWasFound] when no row was deleted.
func (p *postRepository) DeletePost(ctx context.Context, postID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(p.dialect, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Msg("failed to build query")
		return err
	}

	res, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.DeletePost").
			Str("post_id", postID).
			Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoPostWasFound
	}

	return nil
}

// ListPosts returns posts matching filter. An empty filter lists every post.
// The result is never nil.
func (p *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(p.dialect, filter)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to build query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.ListPosts").
			Str("username", filter.Username).
			Str("category", filter.Category).
			Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 50)

	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "postRepository.ListPosts").
				Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "postRepository.ListPosts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}
