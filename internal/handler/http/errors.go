// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. All of them are answered with 400.
var (
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidID         = errors.New("invalid id in path")
	ErrInvalidPage       = errors.New("page must be a positive integer in range")
	ErrInvalidLimit      = errors.New("limit must be an integer")
	ErrInvalidLeadFilter = errors.New("leadId must be an integer")
)
