// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks that blog requests carry their required fields
// before they reach the repositories.
//
// Only presence is checked. Uniqueness of usernames and emails and any other
// constraint is enforced by the storage layer.
package validators

import "context"

// Validator validates a request model. When fields are given only those
// fields are checked (see the Field* constants), otherwise every required
// field of the model is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
