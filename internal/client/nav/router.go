// Package nav decides which screen is visible. The router derives the screen
// group from the session store (absent session = login screen) and moves
// inside the authenticated group only through explicit user intents.
package nav

import (
	"context"
	"errors"

	"github.com/fakestore/storefront/internal/client/session"
	"github.com/fakestore/storefront/internal/logging"
)

// ErrNoTransition is returned when an intent is not valid from the current
// screen (e.g. opening a product while logged out).
var ErrNoTransition = errors.New("transition not allowed from current screen")

// Screen identifies one of the four reachable screens.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenListing
	ScreenDetail
	ScreenGroupInfo
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenListing:
		return "produtos"
	case ScreenDetail:
		return "detalhes"
	case ScreenGroupInfo:
		return "grupo"
	default:
		return "unknown"
	}
}

// Route is the visible screen plus its parameter. ProductID is only
// meaningful for ScreenDetail.
type Route struct {
	Screen    Screen
	ProductID int
}

// Router owns the current route. It subscribes to the session store: a login
// moves from the login screen to the listing, a cleared session returns to
// the login screen from anywhere.
type Router struct {
	sessions *session.Store
	current  Route
	log      logging.Logger
}

func NewRouter(sessions *session.Store, log logging.Logger) *Router {
	r := &Router{
		sessions: sessions,
		current:  Route{Screen: ScreenLogin},
		log:      log.With("component", "nav"),
	}
	sessions.Subscribe(r.onSessionChange)
	return r
}

// Current returns the visible route.
func (r *Router) Current() Route {
	return r.current
}

func (r *Router) onSessionChange(active *session.Session) {
	if active == nil {
		r.setRoute(Route{Screen: ScreenLogin})
		return
	}
	if r.current.Screen == ScreenLogin {
		r.setRoute(Route{Screen: ScreenListing})
	}
}

func (r *Router) setRoute(next Route) {
	if r.current == next {
		return
	}
	r.log.Info(context.Background(), "screen change", "from", r.current.Screen.String(), "to", next.Screen.String())
	r.current = next
}

// SelectProduct enters the detail screen for the given product. Only valid
// from the listing.
func (r *Router) SelectProduct(id int) error {
	if r.current.Screen != ScreenListing {
		return ErrNoTransition
	}
	r.setRoute(Route{Screen: ScreenDetail, ProductID: id})
	return nil
}

// OpenGroupInfo enters the group-info screen. Only valid from the listing.
func (r *Router) OpenGroupInfo() error {
	if r.current.Screen != ScreenListing {
		return ErrNoTransition
	}
	r.setRoute(Route{Screen: ScreenGroupInfo})
	return nil
}

// Back returns from detail or group-info to the listing.
func (r *Router) Back() error {
	switch r.current.Screen {
	case ScreenDetail, ScreenGroupInfo:
		r.setRoute(Route{Screen: ScreenListing})
		return nil
	default:
		return ErrNoTransition
	}
}

// Logout asks the confirmer and, only on an affirmative answer, clears the
// session; the store subscription then flips the route to the login screen.
// Declining or a prompt failure leaves everything unchanged. The reported
// bool tells whether the logout actually happened.
func (r *Router) Logout(ctx context.Context, confirmer Confirmer) (bool, error) {
	if r.current.Screen != ScreenListing {
		return false, ErrNoTransition
	}

	ok, err := confirmer.Confirm(ctx, "Sair da conta", "Deseja realmente sair?")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	r.sessions.Clear()
	return true, nil
}
