package http

import (
	"errors"
	"net/http"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/service"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// errorStatusMap holds the statuses that differ from the 500 every other
// failure gets. Route specific statuses (login, user delete) are decided in
// the handlers themselves.
var errorStatusMap = map[error]int{
	ErrInvalidBody:            http.StatusBadRequest,
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	ErrMissingFile:            http.StatusBadRequest,

	service.ErrForbidden:    http.StatusForbidden,
	service.ErrInvalidToken: http.StatusForbidden,

	store.ErrInvalidFileName: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	return http.StatusInternalServerError
}

// writeError sends err as an ErrorResponse with the status mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	utils.WriteJSON(w, models.ErrorResponse{Success: false, Err: err.Error()}, status)
}
