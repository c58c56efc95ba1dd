package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/config"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/utils"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// tokenService is the HMAC-SHA256 JWT implementation of TokenService.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens. It is
	// independent from the credential codec secret.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the token settings of cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		logger:   logger,
	}
}

// Issue implements TokenService.
func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify implements TokenService. Expired tokens additionally match
// ErrTokenIsExpired.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenIsExpired)
		}
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
