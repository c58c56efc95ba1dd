package store

import (
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
)

// Storages bundles every persistence component the service layer needs.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	FileStorage    FileStorage
}

// NewStorages builds the repositories on top of db and the image storage
// rooted at cfg.Files.ImagesDir.
func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating storages")

	fileStorage, err := NewImageFileStorage(cfg.Files.ImagesDir, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
		FileStorage:    fileStorage,
	}, nil
}
