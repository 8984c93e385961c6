package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/client/fetch"
	"github.com/fakestore/storefront/internal/models"
)

func TestDetail_MountLoadsProduct(t *testing.T) {
	catalog := &fakeCatalog{product: models.Product{ID: 3, Title: "Jaqueta", Price: 55.99}}
	s := newDetailScreen(catalog)

	s.Mount(context.Background(), 3)

	assert.Equal(t, fetch.StatusLoaded, s.product.Status)
	assert.Equal(t, "Jaqueta", s.product.Data.Title)
}

func TestDetail_NotFoundIsTerminal(t *testing.T) {
	catalog := &fakeCatalog{productErr: api.ErrNotFound}
	s := newDetailScreen(catalog)

	s.Mount(context.Background(), 999)

	assert.Equal(t, fetch.StatusFailed, s.product.Status)
	assert.Equal(t, msgProductNotFound, s.product.Message)
	assert.True(t, s.notFound)

	// No auto-retry and no manual retry either: the record does not exist.
	calls := catalog.getCalls
	s.Retry(context.Background())
	assert.Equal(t, calls, catalog.getCalls)
}

func TestDetail_TransportFailureCanBeRetried(t *testing.T) {
	catalog := &fakeCatalog{productErr: api.ErrUnavailable}
	s := newDetailScreen(catalog)

	s.Mount(context.Background(), 3)
	require.Equal(t, fetch.StatusFailed, s.product.Status)
	assert.Equal(t, msgProductLoadFailed, s.product.Message)
	assert.False(t, s.notFound)

	catalog.productErr = nil
	catalog.product = models.Product{ID: 3, Title: "Jaqueta"}
	s.Retry(context.Background())

	assert.Equal(t, fetch.StatusLoaded, s.product.Status)
}

func TestDetail_MountResetsPreviousState(t *testing.T) {
	catalog := &fakeCatalog{productErr: api.ErrNotFound}
	s := newDetailScreen(catalog)
	s.Mount(context.Background(), 999)
	require.True(t, s.notFound)

	catalog.productErr = nil
	catalog.product = models.Product{ID: 1, Title: "Mochila"}
	s.Mount(context.Background(), 1)

	assert.False(t, s.notFound)
	assert.Equal(t, fetch.StatusLoaded, s.product.Status)
	assert.Equal(t, 1, s.product.Data.ID)
}
