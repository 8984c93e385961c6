package services

import (
	"context"
	"fmt"

	"github.com/fakestore/storefront/internal/client/api"
	"github.com/fakestore/storefront/internal/logging"
	"github.com/fakestore/storefront/internal/models"
)

// CatalogService fetches products. Results are per-screen and never cached;
// every screen mount re-fetches.
type CatalogService interface {
	// ListProducts returns the catalog, scoped server-side to category when
	// category is non-empty.
	ListProducts(ctx context.Context, category string) ([]models.Product, error)

	// GetProduct returns one product. api.ErrNotFound when the remote call
	// succeeded but yielded no record, api.ErrUnavailable on transport
	// failure.
	GetProduct(ctx context.Context, id int) (models.Product, error)
}

type catalogService struct {
	client api.Client
	log    logging.Logger
}

func NewCatalogService(client api.Client, log logging.Logger) CatalogService {
	return &catalogService{client: client, log: log.With("service", "catalog")}
}

func (c *catalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := c.client.ListProducts(ctx, category)
	if err != nil {
		c.log.Warn(ctx, "product listing failed", "category", category, "error", err)
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

func (c *catalogService) GetProduct(ctx context.Context, id int) (models.Product, error) {
	product, err := c.client.GetProduct(ctx, id)
	if err != nil {
		c.log.Warn(ctx, "product fetch failed", "id", id, "error", err)
		return models.Product{}, err
	}
	return product, nil
}
