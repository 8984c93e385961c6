package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/client/config"
	"github.com/fakestore/storefront/internal/client/nav"
	"github.com/fakestore/storefront/internal/client/session"
	"github.com/fakestore/storefront/internal/models"
)

func stubInputs(t *testing.T, username, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(t *testing.T, auth *fakeAuth, catalog *fakeCatalog, confirmer nav.Confirmer) (*App, *bytes.Buffer, *session.Store) {
	t.Helper()

	store := session.NewStore()
	router := nav.NewRouter(store, testLogger())
	var out bytes.Buffer

	a := &App{
		sessions:  store,
		router:    router,
		confirmer: confirmer,
		login:     newLoginScreen(auth, store),
		listing:   newListingScreen(catalog, &fakeCategories{list: []string{"electronics"}}),
		detail:    newDetailScreen(catalog),
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       &out,
		log:       testLogger(),
	}
	return a, &out, store
}

func TestNewApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	a, err := NewApp(cfg, testLogger())
	require.NoError(t, err)
	assert.Equal(t, nav.ScreenLogin, a.screen())

	cfg.APIBaseURL = "not a url"
	_, err = NewApp(cfg, testLogger())
	assert.Error(t, err)
}

func TestApp_LoginSuccessLandsOnListing(t *testing.T) {
	auth := &fakeAuth{
		directory: []models.User{{Username: "mor_2314"}},
		session:   session.Session{Token: "abc", User: models.User{Username: "mor_2314"}},
	}
	catalog := &fakeCatalog{products: sampleProducts}
	a, out, store := newTestApp(t, auth, catalog, nav.StaticConfirmer{})

	stubInputs(t, "mor_2314", "83r5^_")

	a.login.Mount(context.Background())
	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, nav.ScreenListing, a.screen())
	require.NotNil(t, store.Get())
	// Listing is rendered with formatted prices.
	assert.Contains(t, out.String(), "Mochila")
	assert.Contains(t, out.String(), "R$ 109,95")
}

func TestApp_LoginFailurePrintsNoticeAndStaysPut(t *testing.T) {
	auth := &fakeAuth{loginErr: api.ErrUserNotFound}
	a, out, store := newTestApp(t, auth, &fakeCatalog{}, nav.StaticConfirmer{})

	stubInputs(t, "nobody", "pw")
	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, nav.ScreenLogin, a.screen())
	assert.Nil(t, store.Get())
	assert.Contains(t, out.String(), msgUserNotFound)
}

func TestApp_OpenAndBack(t *testing.T) {
	auth := &fakeAuth{session: session.Session{Token: "abc"}}
	catalog := &fakeCatalog{
		products: sampleProducts,
		product:  models.Product{ID: 1, Title: "Mochila", Price: 109.95, Category: "men's clothing"},
	}
	a, out, _ := newTestApp(t, auth, catalog, nav.StaticConfirmer{})

	a.login.Submit(context.Background(), "mor_2314", "83r5^_")
	require.Equal(t, nav.ScreenListing, a.screen())
	a.listing.Mount(context.Background())

	require.NoError(t, a.Open(context.Background(), "1"))
	assert.Equal(t, nav.ScreenDetail, a.screen())
	assert.Contains(t, out.String(), "Preço: R$ 109,95")

	listCalls := catalog.listCalls
	require.NoError(t, a.Back(context.Background()))
	assert.Equal(t, nav.ScreenListing, a.screen())
	assert.Equal(t, listCalls, catalog.listCalls, "back does not re-fetch the listing")
}

func TestApp_OpenWithBadArgumentStaysOnListing(t *testing.T) {
	auth := &fakeAuth{session: session.Session{Token: "abc"}}
	a, out, _ := newTestApp(t, auth, &fakeCatalog{products: sampleProducts}, nav.StaticConfirmer{})
	a.login.Submit(context.Background(), "u", "p")

	require.NoError(t, a.Open(context.Background(), "abc"))
	assert.Equal(t, nav.ScreenListing, a.screen())
	assert.Contains(t, out.String(), "id numérico")
}

func TestApp_InfoScreen(t *testing.T) {
	auth := &fakeAuth{session: session.Session{Token: "abc"}}
	a, out, _ := newTestApp(t, auth, &fakeCatalog{}, nav.StaticConfirmer{})
	a.login.Submit(context.Background(), "u", "p")

	require.NoError(t, a.Info(context.Background()))
	assert.Equal(t, nav.ScreenGroupInfo, a.screen())
	assert.Contains(t, out.String(), "Informações do Grupo")

	require.NoError(t, a.Back(context.Background()))
	assert.Equal(t, nav.ScreenListing, a.screen())
}

func TestApp_LogoutConfirmed(t *testing.T) {
	auth := &fakeAuth{directory: []models.User{{Username: "mor_2314"}}, session: session.Session{Token: "abc"}}
	a, out, store := newTestApp(t, auth, &fakeCatalog{}, nav.StaticConfirmer{Answer: true})
	a.login.Submit(context.Background(), "u", "p")
	require.NotNil(t, store.Get())

	require.NoError(t, a.Logout(context.Background()))

	assert.Nil(t, store.Get())
	assert.Equal(t, nav.ScreenLogin, a.screen())
	assert.Contains(t, out.String(), "Você saiu da conta.")
}

func TestApp_LogoutDeclined(t *testing.T) {
	auth := &fakeAuth{session: session.Session{Token: "abc"}}
	a, _, store := newTestApp(t, auth, &fakeCatalog{}, nav.StaticConfirmer{Answer: false})
	a.login.Submit(context.Background(), "u", "p")

	require.NoError(t, a.Logout(context.Background()))

	assert.NotNil(t, store.Get(), "declining keeps the session")
	assert.Equal(t, nav.ScreenListing, a.screen())
}

func TestApp_CommandsGuardedByScreen(t *testing.T) {
	auth := &fakeAuth{}
	a, _, _ := newTestApp(t, auth, &fakeCatalog{}, nav.StaticConfirmer{})

	// Logged out: only login-screen commands work.
	assert.ErrorIs(t, a.List(context.Background()), nav.ErrNoTransition)
	assert.ErrorIs(t, a.Refresh(context.Background()), nav.ErrNoTransition)
	assert.ErrorIs(t, a.Filter(context.Background(), "electronics"), nav.ErrNoTransition)
	assert.ErrorIs(t, a.Logout(context.Background()), nav.ErrNoTransition)

	// Logged in: login-screen commands stop working.
	auth.session = session.Session{Token: "abc"}
	a.login.Submit(context.Background(), "u", "p")
	assert.ErrorIs(t, a.Login(context.Background()), nav.ErrNoTransition)
	assert.ErrorIs(t, a.Reload(context.Background()), nav.ErrNoTransition)
}
