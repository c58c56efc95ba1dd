package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "userId"
	FieldTitle    = "title"
	FieldDesc     = "desc"
)

// BlogValidator implements [Validator] for the request models of the blog:
// RegisterRequest, LoginRequest, NewPost, UserUpdate and PostUpdate.
//
// Required fields must be non-blank. In update models a field that is
// present must not be blank either, since it would overwrite a required
// column with an empty value.
type BlogValidator struct {
}

// NewBlogValidator constructs a new BlogValidator and returns it as the
// Validator interface.
func NewBlogValidator() Validator {
	return &BlogValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model and
// ErrUnknownField if a requested field does not belong to the model.
func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.NewPost:
		return v.validateNewPost(value, fields...)
	case *models.NewPost:
		return v.validateNewPost(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value)

	case models.PostUpdate:
		return v.validatePostUpdate(value)
	case *models.PostUpdate:
		return v.validatePostUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

// check runs the rules named by fields, or all rules when fields is empty.
func check(rules map[string]func() error, order []string, fields ...string) error {
	if len(fields) == 0 {
		fields = order
	}

	for _, field := range fields {
		rule, ok := rules[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := rule(); err != nil {
			return err
		}
	}

	return nil
}

func required(value string, err error) func() error {
	return func() error {
		if strings.TrimSpace(value) == "" {
			return err
		}
		return nil
	}
}

func notBlank(value *string, err error) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return err
	}
	return nil
}

func (v *BlogValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	return check(map[string]func() error{
		FieldUsername: required(req.Username, ErrEmptyUsername),
		FieldEmail:    required(req.Email, ErrEmptyEmail),
		FieldPassword: required(req.Password, ErrEmptyPassword),
	}, []string{FieldUsername, FieldEmail, FieldPassword}, fields...)
}

func (v *BlogValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	return check(map[string]func() error{
		FieldUsername: required(req.Username, ErrEmptyUsername),
		FieldPassword: required(req.Password, ErrEmptyPassword),
	}, []string{FieldUsername, FieldPassword}, fields...)
}

func (v *BlogValidator) validateNewPost(post models.NewPost, fields ...string) error {
	return check(map[string]func() error{
		FieldUserID:   required(post.UserID, ErrEmptyUserID),
		FieldUsername: required(post.Username, ErrEmptyUsername),
		FieldTitle:    required(post.Title, ErrEmptyTitle),
		FieldDesc:     required(post.Desc, ErrEmptyDesc),
	}, []string{FieldUserID, FieldUsername, FieldTitle, FieldDesc}, fields...)
}

func (v *BlogValidator) validateUserUpdate(update models.UserUpdate) error {
	if err := notBlank(update.Username, ErrEmptyUsername); err != nil {
		return err
	}
	if err := notBlank(update.Email, ErrEmptyEmail); err != nil {
		return err
	}
	return notBlank(update.Password, ErrEmptyPassword)
}

func (v *BlogValidator) validatePostUpdate(update models.PostUpdate) error {
	if err := notBlank(update.Username, ErrEmptyUsername); err != nil {
		return err
	}
	if err := notBlank(update.Title, ErrEmptyTitle); err != nil {
		return err
	}
	return notBlank(update.Desc, ErrEmptyDesc)
}
