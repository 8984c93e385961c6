package cli

import (
	"context"
	"errors"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/client/services"
	"github.com/fakestore/storefront/internal/client/session"
	"github.com/fakestore/storefront/internal/models"
)

// loginScreen is the unauthenticated screen. It loads the user directory on
// mount and runs the login flow on submit. All transient state (directory,
// flags, notice) is reset on remount and never shared with other screens.
type loginScreen struct {
	auth     services.AuthService
	sessions *session.Store

	directory    []models.User
	loadingUsers bool
	submitting   bool
	notice       string
}

func newLoginScreen(auth services.AuthService, sessions *session.Store) *loginScreen {
	return &loginScreen{auth: auth, sessions: sessions}
}

// Mount fetches the user directory. On failure the directory stays empty and
// a notice is shown; every subsequent submit then fails at the lookup step
// until the user reloads.
func (s *loginScreen) Mount(ctx context.Context) {
	s.directory = nil
	s.notice = ""
	s.loadingUsers = true

	directory, err := s.auth.LoadDirectory(ctx)
	s.loadingUsers = false
	if err != nil {
		s.notice = msgUsersLoadFailed
		return
	}
	s.directory = directory
}

// Submit runs one login attempt. A submit while another attempt is pending is
// an idempotent no-op. On success the session store is set, which moves the
// router into the authenticated group; on failure a per-kind notice is set
// and the store is left untouched.
func (s *loginScreen) Submit(ctx context.Context, username, password string) {
	if s.submitting || s.loadingUsers {
		return
	}
	s.submitting = true
	defer func() { s.submitting = false }()

	s.notice = ""
	sess, err := s.auth.Login(ctx, username, password, s.directory)
	if err != nil {
		s.notice = loginNotice(err)
		return
	}

	if err := s.sessions.Set(sess); err != nil {
		s.notice = msgLoginFailed
	}
}

// loginNotice maps a login failure onto its user-facing message. Every error
// kind gets a distinct notice.
func loginNotice(err error) string {
	switch {
	case errors.Is(err, api.ErrValidation):
		return msgFieldsRequired
	case errors.Is(err, api.ErrUserNotFound):
		return msgUserNotFound
	case errors.Is(err, api.ErrBadCredentials):
		return msgBadCredentials
	default:
		return msgLoginFailed
	}
}
