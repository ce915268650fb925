// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks mutation arguments and sync request envelopes
// before they reach the store.
//
// Validate accepts an optional list of field names to restrict which rules
// run; without it every rule of the value's type is applied.
package validators

import "context"

// Validator validates arbitrary input values, optionally scoped to fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
