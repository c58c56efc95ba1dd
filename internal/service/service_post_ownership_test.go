package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

func newTestOwnedPostService(m mocks) PostService {
	return NewPostOwnershipService(newTestUserService(m)).Wrap(newTestPostService(m))
}

func TestOwnership_CreatePost_UsesCallerUsername(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)
	post := validNewPost()
	post.Username = "mallory"

	m.users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Username: "alice"}, nil)
	m.posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Post) (models.Post, error) { return p, nil })

	created, err := svc.CreatePost(context.Background(), "u1", post)

	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
}

func TestOwnership_CreatePost_Mismatch(t *testing.T) {
	svc := newTestOwnedPostService(newMocks(t))

	_, err := svc.CreatePost(context.Background(), "u2", validNewPost())

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestOwnership_UpdatePost_Author(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)
	update := models.PostUpdate{Title: ptr("New")}

	m.posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(models.Post{ID: "p1", Username: "alice"}, nil)
	m.users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Username: "alice"}, nil)
	m.posts.EXPECT().UpdatePost(gomock.Any(), "p1", update).Return(models.Post{ID: "p1", Title: "New"}, nil)

	post, err := svc.UpdatePost(context.Background(), "u1", "p1", update)

	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
}

func TestOwnership_UpdatePost_NotAuthor(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)

	m.posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(models.Post{ID: "p1", Username: "alice"}, nil)
	m.users.EXPECT().FindUserByID(gomock.Any(), "u2").Return(models.User{ID: "u2", Username: "bob"}, nil)

	_, err := svc.UpdatePost(context.Background(), "u2", "p1", models.PostUpdate{Title: ptr("New")})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestOwnership_UpdatePost_ChangingUsername(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)

	m.posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(models.Post{ID: "p1", Username: "alice"}, nil)
	m.users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Username: "alice"}, nil)

	_, err := svc.UpdatePost(context.Background(), "u1", "p1", models.PostUpdate{Username: ptr("bob")})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestOwnership_DeletePost_PostMissing(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)

	m.posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(models.Post{}, store.ErrNoPostWasFound)

	err := svc.DeletePost(context.Background(), "u1", "p1")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestOwnership_DeletePost_Author(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)

	m.posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(models.Post{ID: "p1", Username: "alice"}, nil)
	m.users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Username: "alice"}, nil)
	m.posts.EXPECT().DeletePost(gomock.Any(), "p1").Return(nil)

	assert.NoError(t, svc.DeletePost(context.Background(), "u1", "p1"))
}

func TestOwnership_DeletePost_CallerGone(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)

	m.posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(models.Post{ID: "p1", Username: "alice"}, nil)
	m.users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.DeletePost(context.Background(), "u1", "p1")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestOwnership_ReadsPassThrough(t *testing.T) {
	m := newMocks(t)
	svc := newTestOwnedPostService(m)

	m.posts.EXPECT().FindPostByID(gomock.Any(), "p1").Return(models.Post{ID: "p1"}, nil)
	m.posts.EXPECT().ListPosts(gomock.Any(), models.PostFilter{Username: "alice"}).Return([]models.Post{}, nil)

	_, err := svc.GetPost(context.Background(), "p1")
	require.NoError(t, err)

	_, err = svc.ListPosts(context.Background(), models.PostFilter{Username: "alice"})
	require.NoError(t, err)
}
