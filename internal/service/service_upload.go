package service

import (
	"context"
	"fmt"
	"io"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
)

type uploadService struct {
	fileStorage store.FileStorage

	logger *logger.Logger
}

func NewUploadService(fileStorage store.FileStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Upload stores the contents of r under name, replacing any existing file.
func (s *uploadService) Upload(ctx context.Context, name string, r io.Reader) (int64, error) {
	n, err := s.fileStorage.Save(ctx, name, r)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("file upload failed")
		return 0, fmt.Errorf("file upload failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("name", name).Int64("size", n).Msg("file uploaded")
	return n, nil
}

func (s *uploadService) Dir() string {
	return s.fileStorage.Dir()
}
