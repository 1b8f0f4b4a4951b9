// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the catalog: the password
// policy, the Unicode-aware name pattern, movie field bounds, and the
// 1..10 rating scale.
//
// Validators run before normalization and before any uniqueness check, so a
// malformed value is always reported as a validation error (400) and never as
// a conflict.
package validators

import "context"

// Validator checks one model value. The optional field names restrict the
// check to those fields, which is how partial updates (PATCH) validate only
// what the client sent.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
