package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
)

var sqliteDialect = dialect{
	driver:      "sqlite3",
	placeholder: sq.Question,
	isUniqueViolation: func(err error) bool {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) {
			return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
		}
		return false
	},
	categoryFilter: func(category string) (sq.Sqlizer, error) {
		return sq.Expr("EXISTS (SELECT 1 FROM json_each(posts.categories) WHERE json_each.value = ?)", category), nil
	},
}

// sqliteFilePath extracts the database file path from a go-sqlite3 DSN.
// It returns "" for in-memory databases.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	return path
}

// createLocalDBDirIfNotExists makes sure the directory holding the SQLite
// file exists. The driver creates the file itself.
func createLocalDBDirIfNotExists(dsn string) error {
	path := sqliteFilePath(dsn)
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}
