// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means there is no HTTP handler or listen address to
// serve on.
var errNoServersAreCreated = errors.New("server: no http handler or address configured")
