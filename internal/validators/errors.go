// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName   = errors.New("first name is required")
	ErrEmptyLastName    = errors.New("last name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyStatus      = errors.New("status cannot be empty")
	ErrInvalidAssignee  = errors.New("invalid assignee")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidLeadID       = errors.New("invalid lead ID")
	ErrEmptyTitle          = errors.New("title is required")
	ErrCompletionRequired  = errors.New("completed flag is required")
	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrInvalidSource       = errors.New("invalid lead source")
	ErrEmptyPhoneNumber    = errors.New("phone number is required")
	ErrEmptyMessage        = errors.New("message is required")
	ErrInvalidPhoneNumber  = errors.New("phone number must contain digits")
	ErrInvalidSearchLength = errors.New("search term is too long")
)
