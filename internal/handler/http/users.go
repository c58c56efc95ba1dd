package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/app"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)
	userID := chi.URLParam(r, "id")

	if callerID != userID {
		utils.WriteJSON(w, app.MsgUpdateOwnAccount, http.StatusForbidden)
		return
	}

	var update models.UserUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, callerID, userID, update)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			utils.WriteJSON(w, app.MsgUpdateOwnAccount, http.StatusForbidden)
			return
		}
		logger.FromRequest(r).Err(err).Str("user_id", userID).Msg("user update failed")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Err: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID, _ := utils.GetUserIDFromContext(ctx)
	userID := chi.URLParam(r, "id")

	err := h.services.UserService.DeleteUser(ctx, callerID, userID)
	switch {
	case err == nil:
		utils.WriteJSON(w, models.MessageResponse{Success: true, Msg: app.MsgUserDeleted}, http.StatusOK)
	case errors.Is(err, service.ErrForbidden):
		utils.WriteJSON(w, models.MessageResponse{Success: false, Msg: app.MsgDeleteOwnAccount}, http.StatusUnauthorized)
	case errors.Is(err, service.ErrUserNotFound):
		utils.WriteJSON(w, models.MessageResponse{Success: false, Msg: app.MsgUserNotFound}, http.StatusNotFound)
	default:
		logger.FromRequest(r).Err(err).Str("user_id", userID).Msg("user delete failed")
		utils.WriteJSON(w, models.MessageResponse{Success: false, Msg: err.Error()}, http.StatusInternalServerError)
	}
}
