package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/adapter"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// author is a demo account together with the posts published under it.
type author struct {
	account models.RegisterRequest
	posts   []models.NewPost
}

func demoAuthors(password string) []author {
	return []author{
		{
			account: models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: password},
			posts: []models.NewPost{
				{Title: "Hello, blog", Desc: "First post on the new backend.", Categories: models.Categories{"news"}},
				{Title: "Context cancellation", Desc: "Notes on request scoped deadlines.", Categories: models.Categories{"go", "backend"}},
			},
		},
		{
			account: models.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: password},
			posts: []models.NewPost{
				{Title: "Weekend hike", Desc: "Photos coming soon.", Categories: models.Categories{"life"}},
			},
		},
	}
}

type seeder struct {
	api    adapter.APIAdapter
	logger *logger.Logger
}

func newSeeder(api adapter.APIAdapter, logger *logger.Logger) *seeder {
	return &seeder{api: api, logger: logger}
}

// seed registers every author (an existing account is reused), logs in as
// that author and publishes the author's posts. It returns the number of
// posts visible on the server afterwards.
func (s *seeder) seed(ctx context.Context, authors []author) (int, error) {
	for _, a := range authors {
		if err := s.seedAuthor(ctx, a); err != nil {
			return 0, fmt.Errorf("seed author %q: %w", a.account.Username, err)
		}
	}

	if len(authors) == 0 {
		return 0, nil
	}

	posts, err := s.api.ListPosts(ctx, models.PostFilter{})
	if err != nil {
		return 0, fmt.Errorf("list posts: %w", err)
	}

	return len(posts), nil
}

func (s *seeder) seedAuthor(ctx context.Context, a author) error {
	_, err := s.api.Register(ctx, a.account)
	switch {
	case err == nil:
		s.logger.Info().Str("username", a.account.Username).Msg("user registered")
	case errors.Is(err, adapter.ErrInternalServerError):
		// duplicate username or email surfaces as a storage error
		s.logger.Warn().Err(err).Str("username", a.account.Username).Msg("user not registered, trying to log in")
	default:
		return err
	}

	user, err := s.api.Login(ctx, models.LoginRequest{Username: a.account.Username, Password: a.account.Password})
	if err != nil {
		return err
	}

	for _, p := range a.posts {
		p.UserID = user.ID
		p.Username = user.Username

		created, err := s.api.CreatePost(ctx, p)
		if err != nil {
			return fmt.Errorf("create post %q: %w", p.Title, err)
		}
		s.logger.Debug().Str("post_id", created.ID).Str("username", user.Username).Msg("post created")
	}

	return nil
}
