// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the request models
// accepted by the service layer.
//
// Each Validator dispatches on the concrete type it receives and returns
// ErrUnsupportedType for anything else. The optional field names restrict
// validation to a subset of rules; unknown names yield ErrUnknownField.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
