// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Post is a single blog entry.
//
// Username is a denormalized copy of the owner's username, not a foreign key.
// It is kept in sync by the cascade performed on user rename and delete.
type Post struct {
	ID         string     `json:"_id"`
	Username   string     `json:"username"`
	Title      string     `json:"title"`
	Desc       string     `json:"desc"`
	Photo      string     `json:"photo"`
	Categories Categories `json:"categories"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// NewPost is the payload of the create-post route. UserID identifies the
// caller and must match the authenticated identity; it is not persisted.
type NewPost struct {
	UserID     string     `json:"userId"`
	Username   string     `json:"username"`
	Title      string     `json:"title"`
	Desc       string     `json:"desc"`
	Photo      string     `json:"photo"`
	Categories Categories `json:"categories"`
}

// PostUpdate carries a partial update of a post. Only non-nil fields are
// written.
type PostUpdate struct {
	Username   *string     `json:"username,omitempty"`
	Title      *string     `json:"title,omitempty"`
	Desc       *string     `json:"desc,omitempty"`
	Photo      *string     `json:"photo,omitempty"`
	Categories *Categories `json:"categories,omitempty"`
}

// PostFilter selects posts for listing. Username and Category are mutually
// exclusive; Username takes precedence when both are set.
type PostFilter struct {
	Username string
	Category string
}

// Categories is the set of category tags attached to a post.
// It is stored as a JSON array in a single column.
type Categories []string

// Contains reports whether category is one of the tags.
func (c Categories) Contains(category string) bool {
	return slices.Contains(c, category)
}

// Value implements driver.Valuer. A nil set is stored as an empty array.
func (c Categories) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(c))
	if err != nil {
		return nil, fmt.Errorf("error marshaling categories: %w", err)
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (c *Categories) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*c = Categories{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for categories")
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return fmt.Errorf("error unmarshaling categories: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}

	*c = tags
	return nil
}
