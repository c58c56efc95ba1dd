// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// dialect groups the driver-specific pieces of SQL the repositories need.
// Everything else is written once through squirrel.
type dialect struct {
	// driver is the database/sql driver name, also used as the goose dialect.
	driver string

	// placeholder is the bind-variable style of the driver.
	placeholder sq.PlaceholderFormat

	// lockSuffix is appended to SELECTs that read a row about to be
	// modified in the same transaction. Empty when the engine serializes
	// writers on its own.
	lockSuffix string

	// isUniqueViolation reports whether err is a uniqueness constraint
	// violation raised by the driver.
	isUniqueViolation func(err error) bool

	// categoryFilter returns the predicate matching posts whose categories
	// array contains category.
	categoryFilter func(category string) (sq.Sqlizer, error)
}

// builder returns a squirrel statement builder bound to the dialect's
// placeholder format.
func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// classify wraps err with the matching domain sentinel. Errors with no
// domain meaning are returned unchanged.
func (d dialect) classify(err error) error {
	if err == nil {
		return nil
	}

	if d.isUniqueViolation != nil && d.isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	}

	return err
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case postgresDialect.driver:
		return postgresDialect, nil
	case sqliteDialect.driver:
		return sqliteDialect, nil
	default:
		return dialect{}, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
