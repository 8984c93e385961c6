package services

import (
	"context"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/logging"
)

// FallbackCategories is substituted when the remote category listing fails.
// Categories are non-critical to the listing screen, so a failure here must
// never block product display.
var FallbackCategories = []string{"electronics", "jewelery", "men's clothing", "women's clothing"}

// CategoryService lists the available product categories.
type CategoryService interface {
	// List never fails: on a remote error it returns FallbackCategories.
	List(ctx context.Context) []string
}

type categoryService struct {
	client api.Client
	log    logging.Logger
}

func NewCategoryService(client api.Client, log logging.Logger) CategoryService {
	return &categoryService{client: client, log: log.With("service", "categories")}
}

func (c *categoryService) List(ctx context.Context) []string {
	categories, err := c.client.ListCategories(ctx)
	if err != nil || len(categories) == 0 {
		// Swallowed on purpose, but logged so an outage stays visible.
		c.log.Warn(ctx, "category listing failed, using fallback", "error", err)
		return append([]string(nil), FallbackCategories...)
	}
	return categories
}
