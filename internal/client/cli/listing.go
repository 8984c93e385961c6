package cli

import (
	"context"

	"github.com/fakestore/storefront/internal/client/fetch"
	"github.com/fakestore/storefront/internal/client/services"
	"github.com/fakestore/storefront/internal/models"
)

// listingScreen is the entry screen of the authenticated group: the product
// list with category chips, pull-to-refresh and tap-to-retry.
type listingScreen struct {
	catalog    services.CatalogService
	categories services.CategoryService

	products   fetch.State[[]models.Product]
	gen        fetch.Tracker
	chips      []string
	selected   string // empty = all categories
	refreshing bool
}

func newListingScreen(catalog services.CatalogService, categories services.CategoryService) *listingScreen {
	return &listingScreen{catalog: catalog, categories: categories}
}

// Mount resets the screen state, loads the category chips (fallback on
// failure, never blocking) and fetches the unfiltered product list.
func (s *listingScreen) Mount(ctx context.Context) {
	s.products = fetch.State[[]models.Product]{}
	s.selected = ""
	s.refreshing = false

	s.chips = s.categories.List(ctx)
	s.fetchProducts(ctx, false)
}

// SelectCategory applies a chip. Selecting the chip that is already active
// clears the filter back to "all": a toggle, not a no-op.
func (s *listingScreen) SelectCategory(ctx context.Context, category string) {
	if category == s.selected {
		s.selected = ""
	} else {
		s.selected = category
	}
	s.fetchProducts(ctx, false)
}

// Refresh re-fetches silently: the list keeps rendering while new data is on
// the way instead of being replaced by a full-screen spinner.
func (s *listingScreen) Refresh(ctx context.Context) {
	s.refreshing = true
	s.fetchProducts(ctx, true)
}

// Retry re-issues the fetch with the currently selected category.
func (s *listingScreen) Retry(ctx context.Context) {
	s.fetchProducts(ctx, false)
}

func (s *listingScreen) fetchProducts(ctx context.Context, silent bool) {
	gen := s.gen.Begin()
	if silent {
		// Keep the current status; only the stale error notice goes away.
		s.products.Message = ""
	} else {
		s.products.Loading()
	}

	products, err := s.catalog.ListProducts(ctx, s.selected)

	// The result of the most recently issued fetch wins; a superseded
	// response must not overwrite newer state.
	if !s.gen.IsCurrent(gen) {
		return
	}

	if err != nil {
		s.products.Failed(msgProductsLoadFailed)
	} else {
		s.products.Loaded(products)
	}
	s.refreshing = false
}
