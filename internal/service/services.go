package service

import (
	"fmt"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/crypto"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	codec, err := crypto.NewCredentialCodec(cfg.App.CredentialSecret)
	if err != nil {
		return nil, fmt.Errorf("error creating credential codec: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	idGenerator := utils.NewUUIDGenerator()
	tokenService := NewTokenService(cfg.App, logger)
	userService := NewUserService(storages.UserRepository, codec, logger)

	postService := NewPostService(storages.PostRepository, idGenerator, logger)
	if cfg.App.EnforcePostOwnership {
		logger.Info().Msg("post ownership enforcement enabled")
		postService = NewPostOwnershipService(userService).Wrap(postService)
	}

	return &Services{
		TokenService:   tokenService,
		AuthService:    NewAuthService(storages.UserRepository, codec, tokenService, idGenerator, logger),
		UserService:    userService,
		PostService:    postService,
		UploadService:  NewUploadService(storages.FileStorage, logger),
		AppInfoService: appInfoService,
	}, nil
}
