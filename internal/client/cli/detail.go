package cli

import (
	"context"
	"errors"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/client/fetch"
	"github.com/fakestore/storefront/internal/client/services"
	"github.com/fakestore/storefront/internal/models"
)

// detailScreen shows one product. A missing record is terminal for the view;
// a transport failure can be retried by the user.
type detailScreen struct {
	catalog services.CatalogService

	product  fetch.State[models.Product]
	gen      fetch.Tracker
	id       int
	notFound bool
}

func newDetailScreen(catalog services.CatalogService) *detailScreen {
	return &detailScreen{catalog: catalog}
}

// Mount resets the screen for the given product id and fetches it.
func (s *detailScreen) Mount(ctx context.Context, id int) {
	s.product = fetch.State[models.Product]{}
	s.id = id
	s.notFound = false
	s.fetch(ctx)
}

// Retry re-fetches the same product. Pointless after a not-found result, so
// it is a no-op then.
func (s *detailScreen) Retry(ctx context.Context) {
	if s.notFound {
		return
	}
	s.fetch(ctx)
}

func (s *detailScreen) fetch(ctx context.Context) {
	gen := s.gen.Begin()
	s.product.Loading()

	product, err := s.catalog.GetProduct(ctx, s.id)
	if !s.gen.IsCurrent(gen) {
		return
	}

	switch {
	case errors.Is(err, api.ErrNotFound):
		s.notFound = true
		s.product.Failed(msgProductNotFound)
	case err != nil:
		s.product.Failed(msgProductLoadFailed)
	default:
		s.product.Loaded(product)
	}
}
