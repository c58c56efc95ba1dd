package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/app"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)

	var post models.NewPost
	if err := decodeJSON(r, &post); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.PostService.CreatePost(ctx, callerID, post)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			utils.WriteJSON(w, app.MsgPostNotAuthorized, http.StatusForbidden)
			return
		}
		writeError(w, r, err)
		return
	}

	h.metrics.PostCreated()
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

// updatePost is open to any authenticated caller unless the post service is
// wrapped with the ownership check.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)

	var update models.PostUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(ctx, callerID, chi.URLParam(r, "id"), update)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			utils.WriteJSON(w, app.MsgUpdateOwnPost, http.StatusForbidden)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.PostService.DeletePost(ctx, callerID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			utils.WriteJSON(w, app.MsgDeleteOwnPost, http.StatusForbidden)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, app.MsgPostDeleted, http.StatusOK)
}

// listPosts filters by ?user= when given, else by ?cat=, else returns every
// post.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.PostFilter{
		Username: query.Get("user"),
		Category: query.Get("cat"),
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}
