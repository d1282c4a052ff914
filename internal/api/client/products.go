package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

const (
	productsPath   = "/api/v1/products"
	brandsPath     = "/api/v1/products/brands"
	categoriesPath = "/api/v1/products/categories"
)

// ListProducts returns one page of products matching q.
func (c *Client) ListProducts(
	ctx context.Context,
	q *domain.ProductQuery,
) (*domain.ProductPage, error) {
	path := productsPath
	if v := productQueryValues(q); len(v) > 0 {
		path += "?" + v.Encode()
	}

	var page domain.ProductPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	if page.Products == nil {
		page.Products = []domain.Product{}
	}
	return &page, nil
}

// ListBrands returns every brand known to the catalog.
func (c *Client) ListBrands(ctx context.Context) ([]string, error) {
	var resp domain.BrandList
	if err := c.get(ctx, brandsPath, &resp); err != nil {
		return nil, err
	}
	return resp.Brands, nil
}

// ListCategories returns the categories the catalog accepts as a filter.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp domain.CategoryList
	if err := c.get(ctx, categoriesPath, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// productQueryValues encodes q using the listing endpoint's parameter names.
// Empty and false values are omitted.
func productQueryValues(q *domain.ProductQuery) url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Brand != "" {
		v.Set("brand", q.Brand)
	}
	if q.ExternalSourceOnly {
		v.Set("isExternalSource", "true")
	}
	if q.OnSale {
		v.Set("isOnSale", "true")
	}
	return v
}
