package store

import (
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var postgresDialect = dialect{
	driver:      "pgx",
	placeholder: sq.Dollar,
	lockSuffix:  "FOR UPDATE",
	isUniqueViolation: func(err error) bool {
		return postgresError(err) == pgerrcode.UniqueViolation
	},
	categoryFilter: func(category string) (sq.Sqlizer, error) {
		// jsonb containment: categories @> '["category"]'
		needle, err := json.Marshal([]string{category})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		return sq.Expr("categories @> ?::jsonb", string(needle)), nil
	},
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
