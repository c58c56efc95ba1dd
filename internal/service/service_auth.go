package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/crypto"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/store"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/validators"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence, a CredentialCodec for reversible password
// encryption and a TokenService for access tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// codec encrypts passwords at registration and decrypts them at login.
	codec crypto.CredentialCodec

	tokenService TokenService
	idGenerator  utils.IDGenerator
	validator    validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	codec crypto.CredentialCodec,
	tokenService TokenService,
	idGenerator utils.IDGenerator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		codec:          codec,
		tokenService:   tokenService,
		idGenerator:    idGenerator,
		validator:      validators.NewBlogValidator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that username, email and password are present, encrypts the
// password with the credential codec and delegates persistence to the
// UserRepository.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUserAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	encrypted, err := a.codec.Encrypt(req.Password)
	if err != nil {
		log.Err(err).Msg("password encryption failed")
		return models.User{}, fmt.Errorf("password encryption failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:       a.idGenerator.Generate(),
		Username: req.Username,
		Email:    req.Email,
		Password: encrypted,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration failed")
		return models.User{}, fmt.Errorf("user registration failed: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues an access token.
//
// Returns the stored user together with the token, or:
//   - ErrUserNotFound if no user has the given username.
//   - ErrWrongPassword if the decrypted stored password differs from the attempt.
//   - A wrapped error for storage, codec or token failures.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, validators.FieldUsername); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", req.Username).Msg("login for unknown user")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	plain, err := a.codec.Decrypt(user.Password)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("stored password could not be decrypted")
		return models.User{}, models.Token{}, fmt.Errorf("password decryption failed: %w", err)
	}

	if plain != req.Password {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}
