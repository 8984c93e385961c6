// Package api implements the storefront's HTTP client for the Fake Store
// contract: product listing (optionally scoped to a category), product detail,
// category listing, the user directory, and the credential check.
package api

import (
	"context"

	"github.com/fakestore/storefront/internal/models"
)

// Client is the remote store API as seen by the rest of the client.
// All methods honor context cancellation; errors are mapped onto the
// sentinel taxonomy in errors.go.
type Client interface {
	// ListProducts returns the full catalog, or only the given category when
	// category is non-empty.
	ListProducts(ctx context.Context, category string) ([]models.Product, error)

	// GetProduct returns one product by id. A successful call that yields no
	// record reports ErrNotFound.
	GetProduct(ctx context.Context, id int) (models.Product, error)

	// ListCategories returns the category names known to the store.
	ListCategories(ctx context.Context) ([]string, error)

	// ListUsers returns the user directory used for local username matching.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Login performs the remote credential check and returns the issued
	// token. An explicit rejection reports ErrBadCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
