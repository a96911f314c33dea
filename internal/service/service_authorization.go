// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/lead-pulse/models"
)

// authorizationGate resolves the caller on every request; it keeps no state
// of its own.
type authorizationGate struct {
	auth AuthService
}

func NewAuthorizationGate(auth AuthService) AuthorizationGate {
	return &authorizationGate{auth: auth}
}

func (g *authorizationGate) RequireAuthenticated(ctx context.Context, token string) (models.User, error) {
	user, err := g.auth.Resolve(ctx, token)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}
	return user, nil
}

func (g *authorizationGate) RequireAdmin(ctx context.Context, token string) (models.User, error) {
	user, err := g.RequireAuthenticated(ctx, token)
	if err != nil {
		return models.User{}, err
	}
	if !user.IsAdmin {
		return models.User{}, ErrForbidden
	}
	return user, nil
}
