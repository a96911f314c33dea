// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrDuplicateUsername    = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("invalid username or password")
	ErrUnauthenticated      = errors.New("not authenticated")
	ErrForbidden            = errors.New("admin access required")

	ErrLeadNotFound = errors.New("lead not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
