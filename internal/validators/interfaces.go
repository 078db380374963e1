// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks folder and note payloads before they reach the
// store.
//
// Core concepts:
//   - Validator: generic interface to validate request structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: every failed field with a human readable message. It
//     matches ErrValidation with errors.Is so that transport layers can map
//     it onto a single status code.
//
// Validators only check the shape of the input. Rules that need the
// database, such as folder ownership, live in the service layer.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
