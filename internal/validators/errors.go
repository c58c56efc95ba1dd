package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyUserID   = errors.New("userId is required")
	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyDesc     = errors.New("desc is required")
)
