package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/internal/logger"
	"github.com/VaibhavVerma2001/blog-website-backend-with-JWT/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Rename and delete cascades touch the "posts" table inside
// the same transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.ProfilePic, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser persists a new user record and returns the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists] wrapping the driver error.
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = user.CreatedAt

	query, args, err := buildCreateUserQuery(r.db.dialect, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")
		if classified := r.db.dialect.classify(err); errors.Is(classified, ErrUserAlreadyExists) {
			return models.User{}, classified
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "username", username)
}

// FindUserByID retrieves the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.dialect, sq.Eq{column: value})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to build query")
		return models.User{}, err
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findUser").Str(column, value).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateUser applies the non-nil fields of update and cascades a username
// change to the user's posts. Both writes commit or roll back together.
//
// Error handling:
//   - user missing → [ErrNoUserWasFound].
//   - unique violation on the new username or email → [ErrUserAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)
	now := r.now().UTC()

	var updated models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		oldUsername, err := r.lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		query, args, err := buildUpdateUserQuery(r.db.dialect, userID, update, now)
		if err != nil {
			return err
		}

		updated, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("error updating user")
			if classified := r.db.dialect.classify(err); errors.Is(classified, ErrUserAlreadyExists) {
				return classified
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if updated.Username == oldUsername {
			return nil
		}

		query, args, err = buildRenamePostsQuery(r.db.dialect, oldUsername, updated.Username, now)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("error renaming posts")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		renamed, _ := res.RowsAffected()
		log.Debug().
			Str("func", "*userRepository.UpdateUser").
			Str("old_username", oldUsername).
			Str("new_username", updated.Username).
			Int64("posts", renamed).
			Msg("renamed posts")

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser removes the user's posts and then the user in one transaction.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		username, err := r.lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		query, args, err := buildDeletePostsByUsernameQuery(r.db.dialect, username)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting posts")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deletedPosts, _ := res.RowsAffected()

		query, args, err = buildDeleteUserQuery(r.db.dialect, userID)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Debug().
			Str("func", "*userRepository.DeleteUser").
			Str("user_id", userID).
			Int64("posts", deletedPosts).
			Msg("deleted user with posts")

		return nil
	})
}

// lockUser reads the current username of userID inside tx, locking the row
// where the dialect supports it.
func (r *userRepository) lockUser(ctx context.Context, tx *sql.Tx, userID string) (string, error) {
	query, args, err := buildLockUserQuery(r.db.dialect, userID)
	if err != nil {
		return "", err
	}

	var username string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&username)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrNoUserWasFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.lockUser").Str("user_id", userID).Msg("error reading user")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return username, nil
}
