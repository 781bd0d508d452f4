// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds schema and business-rule checks that run before
// the vault touches storage or cryptography.
//
// A malformed stored envelope or an incomplete save request is rejected here
// with a typed sentinel error, so callers never have to interpret generic
// decoding or cipher failures.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
