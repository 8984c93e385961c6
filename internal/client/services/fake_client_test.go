package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/fakestore/storefront/internal/logging"
	"github.com/fakestore/storefront/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	products    []models.Product
	productsErr error
	// captured category of the last ListProducts call
	listedCategory string

	product    models.Product
	productErr error

	categories    []string
	categoriesErr error

	users    []models.User
	usersErr error

	token    string
	loginErr error
	// captured credentials of the last Login call
	loginUser  string
	loginPass  string
	loginCalls int
}

func (f *fakeClient) ListProducts(_ context.Context, category string) ([]models.Product, error) {
	f.listedCategory = category
	return f.products, f.productsErr
}

func (f *fakeClient) GetProduct(context.Context, int) (models.Product, error) {
	return f.product, f.productErr
}

func (f *fakeClient) ListCategories(context.Context) ([]string, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	return f.users, f.usersErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.loginCalls++
	f.loginUser, f.loginPass = username, password
	return f.token, f.loginErr
}
