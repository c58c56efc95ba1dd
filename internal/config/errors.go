package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingSecrets indicates that the credential secret or the token
	// sign key is not configured.
	ErrMissingSecrets = errors.New("credential secret and token sign key are required")
	// ErrSharedSecrets indicates that the credential secret and the token
	// sign key are the same value.
	ErrSharedSecrets = errors.New("credential secret and token sign key must differ")
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownDriver indicates an unsupported database driver name.
	ErrUnknownDriver = errors.New("unknown database driver")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
