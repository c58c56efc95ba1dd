package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/app"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

func newPostHandler(posts *fakePostService) *Handler {
	services := newFakeServices()
	services.PostService = posts
	return newTestHandler(services)
}

func decodeString(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	return s
}

func TestCreatePost_Success(t *testing.T) {
	h := newPostHandler(&fakePostService{
		createFn: func(_ context.Context, callerID string, post models.NewPost) (models.Post, error) {
			assert.Equal(t, "u1", callerID)
			assert.Equal(t, "u1", post.UserID)
			assert.Equal(t, models.Categories{"go", "web"}, post.Categories)
			return models.Post{ID: "p1", Username: post.Username, Title: post.Title}, nil
		},
	})

	body := `{"userId":"u1","username":"alice","title":"T","desc":"D","categories":["go","web"]}`
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/posts/createpost", strings.NewReader(body)), "u1")
	rr := httptest.NewRecorder()
	h.createPost(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, "p1", post.ID)
}

func TestCreatePost_Mismatch(t *testing.T) {
	h := newPostHandler(&fakePostService{
		createFn: func(context.Context, string, models.NewPost) (models.Post, error) {
			return models.Post{}, service.ErrForbidden
		},
	})

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/posts/createpost", strings.NewReader(`{"userId":"u2"}`)), "u1")
	rr := httptest.NewRecorder()
	h.createPost(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgPostNotAuthorized, decodeString(t, rr))
}

func TestGetPost_Error(t *testing.T) {
	h := newPostHandler(&fakePostService{
		getFn: func(context.Context, string) (models.Post, error) {
			return models.Post{}, service.ErrPostNotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/posts/p", nil), "id", "p")
	rr := httptest.NewRecorder()
	h.getPost(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpdatePost_Success(t *testing.T) {
	h := newPostHandler(&fakePostService{
		updateFn: func(_ context.Context, callerID, postID string, update models.PostUpdate) (models.Post, error) {
			assert.Equal(t, "u1", callerID)
			assert.Equal(t, "p1", postID)
			return models.Post{ID: postID, Title: *update.Title}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/posts/update/p1", strings.NewReader(`{"title":"New"}`))
	req = withCaller(withURLParam(req, "id", "p1"), "u1")
	rr := httptest.NewRecorder()
	h.updatePost(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"New"`)
}

func TestUpdatePost_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not author", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing", err: service.ErrPostNotFound, wantStatus: http.StatusInternalServerError},
		{name: "db error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newPostHandler(&fakePostService{
				updateFn: func(context.Context, string, string, models.PostUpdate) (models.Post, error) {
					return models.Post{}, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPut, "/api/posts/update/p1", strings.NewReader(`{"title":"x"}`))
			req = withCaller(withURLParam(req, "id", "p1"), "u1")
			rr := httptest.NewRecorder()
			h.updatePost(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeletePost_Success(t *testing.T) {
	h := newPostHandler(&fakePostService{})

	req := withCaller(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/posts/delete/p1", nil), "id", "p1"), "u1")
	rr := httptest.NewRecorder()
	h.deletePost(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgPostDeleted, decodeString(t, rr))
}

func TestDeletePost_NotAuthor(t *testing.T) {
	h := newPostHandler(&fakePostService{
		deleteFn: func(context.Context, string, string) error { return service.ErrForbidden },
	})

	req := withCaller(withURLParam(httptest.NewRequest(http.MethodDelete, "/api/posts/delete/p1", nil), "id", "p1"), "u1")
	rr := httptest.NewRecorder()
	h.deletePost(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgDeleteOwnPost, decodeString(t, rr))
}

func TestListPosts_Filters(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter models.PostFilter
	}{
		{name: "all", query: "", filter: models.PostFilter{}},
		{name: "by user", query: "?user=alice", filter: models.PostFilter{Username: "alice"}},
		{name: "by category", query: "?cat=go", filter: models.PostFilter{Category: "go"}},
		{name: "both passed through", query: "?user=alice&cat=go", filter: models.PostFilter{Username: "alice", Category: "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.PostFilter
			h := newPostHandler(&fakePostService{
				listFn: func(_ context.Context, filter models.PostFilter) ([]models.Post, error) {
					got = filter
					return []models.Post{}, nil
				},
			})

			rr := httptest.NewRecorder()
			h.listPosts(rr, httptest.NewRequest(http.MethodGet, "/api/posts"+tt.query, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.filter, got)
			assert.JSONEq(t, `[]`, rr.Body.String())
		})
	}
}

func TestListPosts_Error(t *testing.T) {
	h := newPostHandler(&fakePostService{
		listFn: func(context.Context, models.PostFilter) ([]models.Post, error) {
			return nil, errors.New("db down")
		},
	})

	rr := httptest.NewRecorder()
	h.listPosts(rr, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
