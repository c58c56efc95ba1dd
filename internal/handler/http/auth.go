package http

import (
	"errors"
	"net/http"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/app"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/metrics"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("invalid register body was passed")
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration failed")
		utils.WriteJSON(w, models.ErrorResponse{Success: false, Err: err.Error()}, http.StatusInternalServerError)
		return
	}

	h.metrics.Registered()
	log.Debug().Str("user_id", user.ID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{Success: true, User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("invalid login body was passed")
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			h.metrics.LoginFailed(metrics.ReasonUnknownUser)
			utils.WriteJSON(w, models.MessageResponse{Success: false, Msg: app.MsgBadCredentials}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			h.metrics.LoginFailed(metrics.ReasonWrongPassword)
			utils.WriteJSON(w, models.MessageResponse{Success: false, Msg: app.MsgBadCredentials}, http.StatusUnauthorized)
			return
		default:
			h.metrics.LoginFailed(metrics.ReasonError)
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Success: false, Err: err.Error()}, http.StatusInternalServerError)
			return
		}
	}

	h.metrics.LoginSucceeded()
	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Success:     true,
		User:        user,
		AccessToken: token.SignedString,
	}, http.StatusOK)
}
