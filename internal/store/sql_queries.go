package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

var (
	userColumns = []string{"id", "username", "email", "password", "profile_pic", "is_admin", "created_at", "updated_at"}
	postColumns = []string{"id", "username", "title", "description", "photo", "categories", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(d dialect, user models.User) (string, []any, error) {
	query, args, err := d.builder().
		Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Password, user.ProfilePic, user.IsAdmin, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(d dialect, where sq.Eq) (string, []any, error) {
	query, args, err := d.builder().
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildLockUserQuery selects the current username of a user that is about to
// be modified inside a transaction.
func buildLockUserQuery(d dialect, userID string) (string, []any, error) {
	b := d.builder().
		Select("username").
		From("users").
		Where(sq.Eq{"id": userID})
	if d.lockSuffix != "" {
		b = b.Suffix(d.lockSuffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE. updated_at is always set, so
// the SET clause is never empty.
func buildUpdateUserQuery(d dialect, userID string, update models.UserUpdate, updatedAt time.Time) (string, []any, error) {
	b := d.builder().
		Update("users").
		Set("updated_at", updatedAt)

	if update.Username != nil {
		b = b.Set("username", *update.Username)
	}
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.Password != nil {
		b = b.Set("password", *update.Password)
	}
	if update.ProfilePic != nil {
		b = b.Set("profile_pic", *update.ProfilePic)
	}
	if update.IsAdmin != nil {
		b = b.Set("is_admin", *update.IsAdmin)
	}

	query, args, err := b.
		Where(sq.Eq{"id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(d dialect, userID string) (string, []any, error) {
	query, args, err := d.builder().
		Delete("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildRenamePostsQuery moves every post of oldUsername to newUsername.
func buildRenamePostsQuery(d dialect, oldUsername, newUsername string, updatedAt time.Time) (string, []any, error) {
	query, args, err := d.builder().
		Update("posts").
		Set("username", newUsername).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"username": oldUsername}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePostsByUsernameQuery(d dialect, username string) (string, []any, error) {
	query, args, err := d.builder().
		Delete("posts").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreatePostQuery(d dialect, post models.Post) (string, []any, error) {
	categories := post.Categories
	if categories == nil {
		categories = models.Categories{}
	}

	query, args, err := d.builder().
		Insert("posts").
		Columns(postColumns...).
		Values(post.ID, post.Username, post.Title, post.Desc, post.Photo, categories, post.CreatedAt, post.UpdatedAt).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindPostByIDQuery(d dialect, postID string) (string, []any, error) {
	query, args, err := d.builder().
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPostsQuery applies at most one filter: Username wins over
// Category. Posts come back oldest first.
func buildListPostsQuery(d dialect, filter models.PostFilter) (string, []any, error) {
	b := d.builder().
		Select(postColumns...).
		From("posts")

	switch {
	case filter.Username != "":
		b = b.Where(sq.Eq{"username": filter.Username})
	case filter.Category != "":
		pred, err := d.categoryFilter(filter.Category)
		if err != nil {
			return "", nil, err
		}
		b = b.Where(pred)
	}

	query, args, err := b.
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePostQuery builds a partial UPDATE. updated_at is always set, so
// the SET clause is never empty.
func buildUpdatePostQuery(d dialect, postID string, update models.PostUpdate, updatedAt time.Time) (string, []any, error) {
	b := d.builder().
		Update("posts").
		Set("updated_at", updatedAt)

	if update.Username != nil {
		b = b.Set("username", *update.Username)
	}
	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Desc != nil {
		b = b.Set("description", *update.Desc)
	}
	if update.Photo != nil {
		b = b.Set("photo", *update.Photo)
	}
	if update.Categories != nil {
		b = b.Set("categories", *update.Categories)
	}

	query, args, err := b.
		Where(sq.Eq{"id": postID}).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePostQuery(d dialect, postID string) (string, []any, error) {
	query, args, err := d.builder().
		Delete("posts").
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
