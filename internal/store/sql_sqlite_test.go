package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// newSQLiteStorages opens a migrated SQLite database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dir := t.TempDir()
	db, err := NewConnect(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(dir, "db", "blog.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	storages, err := NewStorages(db, config.Storage{Files: config.Files{ImagesDir: filepath.Join(dir, "images")}}, logger.Nop())
	require.NoError(t, err)
	return storages
}

func TestNewConnect_UnknownDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestSQLite_UserAndPostLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	john, err := s.UserRepository.CreateUser(ctx, models.User{ID: "u1", Username: "john", Email: "john@example.com", Password: "enc"})
	require.NoError(t, err)
	_, err = s.UserRepository.CreateUser(ctx, models.User{ID: "u2", Username: "jane", Email: "jane@example.com", Password: "enc"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{ID: "u3", Username: "john", Email: "other@example.com", Password: "enc"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	for _, p := range []models.Post{
		{ID: "p1", Username: "john", Title: "a", Desc: "a", Categories: models.Categories{"go", "db"}},
		{ID: "p2", Username: "john", Title: "b", Desc: "b", Categories: models.Categories{"life"}},
		{ID: "p3", Username: "jane", Title: "c", Desc: "c", Categories: models.Categories{"go"}},
	} {
		_, err = s.PostRepository.CreatePost(ctx, p)
		require.NoError(t, err)
	}

	byCategory, err := s.PostRepository.ListPosts(ctx, models.PostFilter{Category: "go"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p3"}, postIDs(byCategory))

	byUser, err := s.PostRepository.ListPosts(ctx, models.PostFilter{Username: "john"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, postIDs(byUser))

	all, err := s.PostRepository.ListPosts(ctx, models.PostFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// rename cascades to exactly john's posts
	newName := "johnny"
	updated, err := s.UserRepository.UpdateUser(ctx, john.ID, models.UserUpdate{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "johnny", updated.Username)
	assert.Equal(t, "john@example.com", updated.Email)

	renamed, err := s.PostRepository.ListPosts(ctx, models.PostFilter{Username: "johnny"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, postIDs(renamed))

	old, err := s.PostRepository.ListPosts(ctx, models.PostFilter{Username: "john"})
	require.NoError(t, err)
	assert.Empty(t, old)

	jane, err := s.PostRepository.FindPostByID(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, "jane", jane.Username)

	// renaming onto a taken username fails and leaves posts untouched
	taken := "jane"
	_, err = s.UserRepository.UpdateUser(ctx, john.ID, models.UserUpdate{Username: &taken})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	still, err := s.PostRepository.ListPosts(ctx, models.PostFilter{Username: "johnny"})
	require.NoError(t, err)
	assert.Len(t, still, 2)

	// delete cascades to the user's posts
	require.NoError(t, s.UserRepository.DeleteUser(ctx, john.ID))
	_, err = s.UserRepository.FindUserByID(ctx, john.ID)
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	remaining, err := s.PostRepository.ListPosts(ctx, models.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"p3"}, postIDs(remaining))

	assert.ErrorIs(t, s.UserRepository.DeleteUser(ctx, john.ID), ErrNoUserWasFound)
}

func TestSQLite_PostUpdateAndDelete(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.PostRepository.CreatePost(ctx, models.Post{ID: "p1", Username: "john", Title: "t", Desc: "d"})
	require.NoError(t, err)

	title := "new title"
	cats := models.Categories{"news"}
	updated, err := s.PostRepository.UpdatePost(ctx, "p1", models.PostUpdate{Title: &title, Categories: &cats})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "d", updated.Desc)
	assert.Equal(t, models.Categories{"news"}, updated.Categories)

	_, err = s.PostRepository.UpdatePost(ctx, "missing", models.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNoPostWasFound)

	require.NoError(t, s.PostRepository.DeletePost(ctx, "p1"))
	assert.ErrorIs(t, s.PostRepository.DeletePost(ctx, "p1"), ErrNoPostWasFound)
	_, err = s.PostRepository.FindPostByID(ctx, "p1")
	assert.ErrorIs(t, err, ErrNoPostWasFound)
}

func postIDs(posts []models.Post) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
