// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inputs entering the offline queue before they
// are persisted.
//
// A Validator accepts an optional list of field names that restricts the
// checks to a subset of fields; with none given every field is checked.
package validators

import "context"

// Validator validates arbitrary values, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
