// Package cli hosts the interactive storefront client: the screen
// controllers, their rendering, and the read-eval-print loop that stands in
// for the mobile navigation stack.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/client/config"
	"github.com/fakestore/storefront/internal/client/nav"
	"github.com/fakestore/storefront/internal/client/services"
	"github.com/fakestore/storefront/internal/client/session"
	"github.com/fakestore/storefront/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// App wires the screen controllers to the router and the session store and
// exposes one method per user intent for the REPL to dispatch to.
type App struct {
	config    *config.Config
	sessions  *session.Store
	router    *nav.Router
	confirmer nav.Confirmer

	login   *loginScreen
	listing *listingScreen
	detail  *detailScreen

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("building api client: %w", err)
	}

	sessions := session.NewStore()
	router := nav.NewRouter(sessions, log)

	auth := services.NewAuthService(apiClient, log)
	catalog := services.NewCatalogService(apiClient, log)
	categories := services.NewCategoryService(apiClient, log)

	reader := bufio.NewReader(os.Stdin)

	return &App{
		config:    c,
		sessions:  sessions,
		router:    router,
		confirmer: &nav.TerminalConfirmer{In: reader, Out: os.Stdout},
		login:     newLoginScreen(auth, sessions),
		listing:   newListingScreen(catalog, categories),
		detail:    newDetailScreen(catalog),
		reader:    reader,
		out:       os.Stdout,
		log:       log,
	}, nil
}

// Run mounts the login screen and hands control to the REPL until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Bem-vindo! Faça login com um usuário válido da Fake Store API.")
	a.login.Mount(ctx)
	if a.login.notice != "" {
		fmt.Fprintln(a.out, a.login.notice)
	}

	runREPL(ctx, a, func() string { return a.router.Current().Screen.String() }, bufio.NewScanner(os.Stdin))
}

func (a *App) screen() nav.Screen {
	return a.router.Current().Screen
}

// Login prompts for credentials and runs one submit. On success the router
// lands on the listing, which is then mounted and rendered.
func (a *App) Login(ctx context.Context) error {
	if a.screen() != nav.ScreenLogin {
		return nav.ErrNoTransition
	}

	username, err := getSimpleText(a.reader, "Usuário", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.login.Submit(ctx, username, password)
	if a.login.notice != "" {
		fmt.Fprintln(a.out, a.login.notice)
		return nil
	}

	a.listing.Mount(ctx)
	renderListing(a.out, a.listing)
	return nil
}

// Reload re-fetches the user directory after a failed load.
func (a *App) Reload(ctx context.Context) error {
	if a.screen() != nav.ScreenLogin {
		return nav.ErrNoTransition
	}
	a.login.Mount(ctx)
	if a.login.notice != "" {
		fmt.Fprintln(a.out, a.login.notice)
	} else {
		fmt.Fprintf(a.out, "%d usuários carregados.\n", len(a.login.directory))
	}
	return nil
}

// List renders the product listing in its current state.
func (a *App) List(ctx context.Context) error {
	if a.screen() != nav.ScreenListing {
		return nav.ErrNoTransition
	}
	renderListing(a.out, a.listing)
	return nil
}

// Filter applies a category chip; the active chip toggles back to "all".
func (a *App) Filter(ctx context.Context, category string) error {
	if a.screen() != nav.ScreenListing {
		return nav.ErrNoTransition
	}
	a.listing.SelectCategory(ctx, category)
	renderListing(a.out, a.listing)
	return nil
}

// Refresh re-fetches the listing silently (no full-screen spinner).
func (a *App) Refresh(ctx context.Context) error {
	if a.screen() != nav.ScreenListing {
		return nav.ErrNoTransition
	}
	a.listing.Refresh(ctx)
	renderListing(a.out, a.listing)
	return nil
}

// Retry re-issues the failed fetch of the visible screen.
func (a *App) Retry(ctx context.Context) error {
	switch a.screen() {
	case nav.ScreenListing:
		a.listing.Retry(ctx)
		renderListing(a.out, a.listing)
		return nil
	case nav.ScreenDetail:
		a.detail.Retry(ctx)
		renderDetail(a.out, a.detail)
		return nil
	default:
		return nav.ErrNoTransition
	}
}

// Open navigates to the detail screen of the given product id.
func (a *App) Open(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Informe um id numérico, ex.: open 3")
		return nil
	}
	if err := a.router.SelectProduct(id); err != nil {
		return err
	}
	a.detail.Mount(ctx, id)
	renderDetail(a.out, a.detail)
	return nil
}

// Info navigates to the static group-authorship screen.
func (a *App) Info(ctx context.Context) error {
	if err := a.router.OpenGroupInfo(); err != nil {
		return err
	}
	renderGroupInfo(a.out)
	return nil
}

// Back returns from detail or group-info to the listing. The listing is not
// re-fetched: it stayed mounted underneath.
func (a *App) Back(ctx context.Context) error {
	if err := a.router.Back(); err != nil {
		return err
	}
	renderListing(a.out, a.listing)
	return nil
}

// Logout runs the confirmation gate and, when confirmed, returns to the
// login screen (which re-loads the user directory).
func (a *App) Logout(ctx context.Context) error {
	done, err := a.router.Logout(ctx, a.confirmer)
	if err != nil {
		if errors.Is(err, nav.ErrNoTransition) {
			return err
		}
		a.log.Warn(ctx, "logout prompt failed", "error", err)
		return nil
	}
	if !done {
		return nil
	}

	fmt.Fprintln(a.out, "Você saiu da conta.")
	a.login.Mount(ctx)
	if a.login.notice != "" {
		fmt.Fprintln(a.out, a.login.notice)
	}
	return nil
}
