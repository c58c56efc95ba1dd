package http

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/app"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
)

// multipartMemory is how much of a multipart form is kept in memory before
// the rest spills to temporary files.
const multipartMemory = 1 << 20

// upload stores the "file" part of a multipart form under the name given in
// the "name" field, falling back to the file's own name.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if !errors.As(err, &maxBytesErr) {
			err = fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		writeError(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingFile, err))
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	size, err := h.services.UploadService.Upload(r.Context(), name, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("name", name).Int64("size", size).Msg("file uploaded")
	utils.WriteJSON(w, app.MsgFileUploaded, http.StatusOK)
}

// images serves uploaded files by name. Directory listings are not exposed.
func (h *Handler) images() http.Handler {
	return http.FileServer(noDirFS{http.Dir(h.services.UploadService.Dir())})
}

// noDirFS hides directories from [http.FileServer].
type noDirFS struct {
	fs http.FileSystem
}

func (n noDirFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}

	return f, nil
}
