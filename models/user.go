// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a blog account.
//
// Password always holds the encrypted form produced by the credential codec
// and is excluded from JSON so a User can be written to a response as-is.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string).
	ID string `json:"_id"`

	// Username is unique across users and is copied onto every post the
	// user owns.
	Username string `json:"username"`

	// Email is unique across users.
	Email string `json:"email"`

	// Password is the encrypted password. Never serialized.
	Password string `json:"-"`

	// ProfilePic is an optional reference (file name or URL) to the user's
	// profile picture.
	ProfilePic string `json:"profilePic"`

	// IsAdmin is an informational flag. No route grants extra rights based
	// on it.
	IsAdmin bool `json:"isAdmin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries a partial update of a user record.
// Only non-nil fields are written.
type UserUpdate struct {
	Username   *string `json:"username,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty"`
	IsAdmin    *bool   `json:"isAdmin,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Password == nil && u.ProfilePic == nil && u.IsAdmin == nil
}
