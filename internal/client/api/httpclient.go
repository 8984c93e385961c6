package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fakestore/storefront/internal/logging"
	"github.com/fakestore/storefront/internal/models"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient talks JSON over HTTP to a Fake-Store-compatible endpoint.
// Every request carries a correlation id so client and server logs can be
// matched up.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. The timeout applies
// per request; retries are always user-initiated, never automatic.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}, nil
}

// doJSON issues one request and decodes a 2xx JSON body into out (when out is
// non-nil). It returns the status code so callers can map specific statuses
// before the generic mapping applies.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return 0, fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Body drained so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Warn(ctx, "bad response body", "method", method, "path", path, "error", err)
			return resp.StatusCode, fmt.Errorf("%s %s: decoding response: %w", method, path, ErrUnavailable)
		}
	}
	return resp.StatusCode, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	path := "/products"
	if category != "" {
		path = "/products/category/" + url.PathEscape(category)
	}

	var products []models.Product
	status, err := c.doJSON(ctx, http.MethodGet, path, nil, &products)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("listing products: status %d: %w", status, ErrUnavailable)
	}
	return products, nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id int) (models.Product, error) {
	var product *models.Product
	status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product)
	if err != nil {
		return models.Product{}, err
	}
	if status == http.StatusNotFound {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if status < 200 || status > 299 {
		return models.Product{}, fmt.Errorf("product %d: status %d: %w", id, status, ErrUnavailable)
	}
	// The public API answers unknown ids with 200 and a null body.
	if product == nil || product.ID == 0 {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return *product, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	status, err := c.doJSON(ctx, http.MethodGet, "/products/categories", nil, &categories)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("listing categories: status %d: %w", status, ErrUnavailable)
	}
	return categories, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	status, err := c.doJSON(ctx, http.MethodGet, "/users", nil, &users)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("listing users: status %d: %w", status, ErrUnavailable)
	}
	return users, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var resp struct {
		Token string `json:"token"`
	}

	status, err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp)
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusBadRequest:
		return "", fmt.Errorf("login: %w", ErrBadCredentials)
	case status < 200 || status > 299:
		return "", fmt.Errorf("login: status %d: %w", status, ErrUnavailable)
	case resp.Token == "":
		// A 2xx without a token is still an explicit rejection.
		return "", fmt.Errorf("login: %w", ErrBadCredentials)
	}
	return resp.Token, nil
}
