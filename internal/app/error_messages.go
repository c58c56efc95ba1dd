// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blog server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. They are part of the public API: existing frontends match
// on them, so the wording must not change.
package app

const (
	// MsgNotAuthenticated is returned by the auth middleware when the request
	// carries no "Authorization" header.
	MsgNotAuthenticated = "You are not authenticated!"

	// MsgTokenNotValid is returned when the bearer token is malformed,
	// expired or signed with another key.
	MsgTokenNotValid = "Token is not valid!"

	// MsgBadCredentials is returned by login for both an unknown username
	// and a wrong password. Only the status code differs.
	MsgBadCredentials = "Please login with correct credentials"

	MsgUpdateOwnAccount = "You can update only your account!"
	MsgDeleteOwnAccount = "You can delete only your account!"
	MsgUserDeleted      = "User has been deleted..."
	MsgUserNotFound     = "User not found!"

	// MsgPostNotAuthorized is returned when the userId of a new post differs
	// from the caller. The capital A is kept as clients already see it.
	MsgPostNotAuthorized = "You are not Authenticated!"

	MsgUpdateOwnPost = "You can update only your post!"
	MsgDeleteOwnPost = "You can delete only your post!"
	MsgPostDeleted   = "Post has been deleted..."

	// MsgFileUploaded confirms a stored upload.
	MsgFileUploaded = "File has been uploaded"
)
