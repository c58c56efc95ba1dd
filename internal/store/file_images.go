package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
)

// imageFileStorage is the local-disk implementation of [FileStorage].
// Files live flat inside dir; the client-chosen name is reduced to its base
// name so uploads cannot escape the directory.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage creates dir if needed and returns a [FileStorage]
// rooted at it.
func NewImageFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty images directory", ErrInvalidFileName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewImageFileStorage").Str("dir", dir).Msg("error creating images directory")
		return nil, fmt.Errorf("error creating images directory: %w", err)
	}

	return &imageFileStorage{dir: dir, logger: logger}, nil
}

// Dir implements [FileStorage].
func (s *imageFileStorage) Dir() string {
	return s.dir
}

// Save implements [FileStorage]. The file is written to a temporary name
// and renamed into place once fully copied.
func (s *imageFileStorage) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	log := logger.FromContext(ctx)

	base, err := sanitizeFileName(name)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.Save").Msg("error creating temp file")
		return 0, fmt.Errorf("error creating file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, readerWithContext{ctx: ctx, r: r})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.Save").Str("name", base).Msg("error writing file")
		return 0, fmt.Errorf("error writing file: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, base)); err != nil {
		log.Err(err).Str("func", "*imageFileStorage.Save").Str("name", base).Msg("error moving file into place")
		return 0, fmt.Errorf("error writing file: %w", err)
	}

	return n, nil
}

func sanitizeFileName(name string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, "\\", "/")))
	if base == "/" || base == "." || base == ".." || strings.HasPrefix(base, ".upload-") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return base, nil
}

// readerWithContext stops a copy once ctx is done.
type readerWithContext struct {
	ctx context.Context
	r   io.Reader
}

func (rc readerWithContext) Read(p []byte) (int, error) {
	if err := rc.ctx.Err(); err != nil {
		return 0, err
	}
	return rc.r.Read(p)
}
