package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/crypto"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/validators"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

type userService struct {
	userRepository store.UserRepository
	codec          crypto.CredentialCodec
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, codec crypto.CredentialCodec, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		codec:          codec,
		validator:      validators.NewBlogValidator(),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies update to the account of userID when callerID owns it.
// A new password is encrypted before it is stored. A username change is
// propagated to the user's posts by the repository.
func (s *userService) UpdateUser(ctx context.Context, callerID, userID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID == "" || callerID != userID {
		log.Debug().Str("caller_id", callerID).Str("user_id", userID).Msg("user update by non-owner")
		return models.User{}, ErrForbidden
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Password != nil {
		encrypted, err := s.codec.Encrypt(*update.Password)
		if err != nil {
			log.Err(err).Msg("password encryption failed")
			return models.User{}, fmt.Errorf("password encryption failed: %w", err)
		}
		update.Password = &encrypted
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

// DeleteUser removes the account of userID and all of its posts when
// callerID owns it.
func (s *userService) DeleteUser(ctx context.Context, callerID, userID string) error {
	log := logger.FromContext(ctx)

	if callerID == "" || callerID != userID {
		log.Debug().Str("caller_id", callerID).Str("user_id", userID).Msg("user delete by non-owner")
		return ErrForbidden
	}

	err := s.userRepository.DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user delete failed")
		return fmt.Errorf("user delete failed: %w", err)
	}

	return nil
}
