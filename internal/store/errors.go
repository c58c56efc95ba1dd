package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT or UPDATE on the users
	// table violates the username or email uniqueness constraint. The driver
	// error is wrapped alongside it so its message reaches the client.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup by id or username matches
	// no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoPostWasFound is returned when a lookup, update or delete by id
	// matches no post record.
	ErrNoPostWasFound = errors.New("no post was found")

	// ErrUnknownDriver is returned by NewConnect for a driver name that has
	// no dialect.
	ErrUnknownDriver = errors.New("unknown database driver")

	// ErrInvalidFileName is returned by the image storage when the requested
	// name is empty or resolves outside the images directory.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or an
	// INSERT/UPDATE ... RETURNING query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set (UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
