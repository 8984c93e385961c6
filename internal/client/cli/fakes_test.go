package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/fakestore/storefront/internal/client/session"
	"github.com/fakestore/storefront/internal/logging"
	"github.com/fakestore/storefront/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	directory    []models.User
	directoryErr error

	session  session.Session
	loginErr error

	loginCalls int
	// onLogin runs inside Login, before the result is returned. Lets tests
	// drive reentrant submits.
	onLogin func()
}

func (f *fakeAuth) LoadDirectory(context.Context) ([]models.User, error) {
	return f.directory, f.directoryErr
}

func (f *fakeAuth) Login(_ context.Context, username, password string, _ []models.User) (session.Session, error) {
	f.loginCalls++
	if f.onLogin != nil {
		f.onLogin()
	}
	return f.session, f.loginErr
}

// fakeCatalog implements services.CatalogService.
type fakeCatalog struct {
	products    []models.Product
	productsErr error

	lastCategory string
	listCalls    int
	// onList runs inside ListProducts, before the result is returned. Lets
	// tests observe in-flight state or supersede the pending fetch.
	onList func(category string)

	product    models.Product
	productErr error
	getCalls   int
}

func (f *fakeCatalog) ListProducts(_ context.Context, category string) ([]models.Product, error) {
	f.listCalls++
	f.lastCategory = category
	if f.onList != nil {
		f.onList(category)
	}
	return f.products, f.productsErr
}

func (f *fakeCatalog) GetProduct(context.Context, int) (models.Product, error) {
	f.getCalls++
	return f.product, f.productErr
}

// fakeCategories implements services.CategoryService.
type fakeCategories struct {
	list []string
}

func (f *fakeCategories) List(context.Context) []string {
	return f.list
}
