// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery is the parent of every query validation error.
var ErrInvalidQuery = errors.New("invalid lead query")

var (
	ErrInvalidLimit     = fmt.Errorf("%w: limit must not be negative", ErrInvalidQuery)
	ErrInvalidOffset    = fmt.Errorf("%w: offset must not be negative", ErrInvalidQuery)
	ErrUnknownSortField = fmt.Errorf("%w: unknown sort field", ErrInvalidQuery)
	ErrInvalidSortOrder = fmt.Errorf("%w: sort order must be asc or desc", ErrInvalidQuery)
)
