// Package services contains the application services of the storefront
// client. This file defines authentication: loading the user directory and
// the local-match-then-remote-check login flow.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/client/session"
	"github.com/fakestore/storefront/internal/logging"
	"github.com/fakestore/storefront/internal/models"
)

// AuthService defines the login operations of the client.
//
// Contract:
//   - LoadDirectory: bulk-fetch the known users for local username matching.
//   - Login: validate locally, match the directory, then perform exactly one
//     remote credential check. Each failure kind is a distinct sentinel from
//     the api package; no retries.
//
// All methods honor context cancellation.
type AuthService interface {
	LoadDirectory(ctx context.Context) ([]models.User, error)
	Login(ctx context.Context, username, password string, directory []models.User) (session.Session, error)
}

type authService struct {
	client api.Client
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client api.Client, log logging.Logger) AuthService {
	return &authService{client: client, log: log.With("service", "auth")}
}

// LoadDirectory fetches the user directory. On failure the caller keeps an
// empty directory; every login then fails at the lookup step until the user
// retries the load.
func (a *authService) LoadDirectory(ctx context.Context) ([]models.User, error) {
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		a.log.Warn(ctx, "directory load failed", "error", err)
		return nil, fmt.Errorf("loading directory: %w", err)
	}
	return users, nil
}

// Login runs the three-step login flow:
//  1. api.ErrValidation when username or password trims to empty, checked
//     before any remote call.
//  2. api.ErrUserNotFound when the username matches no directory entry
//     case-insensitively.
//  3. One remote credential check using the matched entry's canonical
//     username and the trimmed password; api.ErrBadCredentials on an explicit
//     rejection, api.ErrUnavailable on a transport failure.
//
// On success the returned session carries the issued token and the matched
// directory entry.
func (a *authService) Login(ctx context.Context, username, password string, directory []models.User) (session.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return session.Session{}, fmt.Errorf("login: %w", api.ErrValidation)
	}

	var matched *models.User
	for i := range directory {
		if strings.EqualFold(directory[i].Username, username) {
			matched = &directory[i]
			break
		}
	}
	if matched == nil {
		return session.Session{}, fmt.Errorf("login %q: %w", username, api.ErrUserNotFound)
	}

	token, err := a.client.Login(ctx, matched.Username, password)
	if err != nil {
		a.log.Warn(ctx, "credential check failed", "username", matched.Username, "error", err)
		return session.Session{}, err
	}

	a.log.Info(ctx, "login succeeded", "username", matched.Username)
	return session.Session{Token: token, User: *matched}, nil
}
