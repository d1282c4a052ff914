package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront-discovery/internal/catalog"
	domain "github.com/donaldgifford/storefront-discovery/pkg/types"
)

// ProductsHandler handles the product listing endpoints.
type ProductsHandler struct {
	source catalog.ProductSource
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(s catalog.ProductSource) *ProductsHandler {
	return &ProductsHandler{source: s}
}

// --- Input/Output types ---

// ListProductsInput is the input for the paginated product listing.
type ListProductsInput struct {
	Page             int    `query:"page"             doc:"Page number, starting at 1"                minimum:"0"`
	Limit            int    `query:"limit"            doc:"Page size (server default when omitted)"   minimum:"0"`
	Category         string `query:"category"         doc:"Filter by category"`
	Search           string `query:"search"           doc:"Free-text search over name, brand and category"`
	Brand            string `query:"brand"            doc:"Filter by brand"`
	IsExternalSource bool   `query:"isExternalSource" doc:"Only products from the external source"`
	IsOnSale         bool   `query:"isOnSale"         doc:"Only discounted products"`
}

// ListProductsOutput is the response for the product listing.
type ListProductsOutput struct {
	Body domain.ProductPage
}

// ListBrandsOutput is the response for the brand list.
type ListBrandsOutput struct {
	Body domain.BrandList
}

// ListCategoriesOutput is the response for the category list.
type ListCategoriesOutput struct {
	Body domain.CategoryList
}

// --- Handlers ---

// ListProducts returns one page of visible products matching the filters.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	page, err := h.source.ListProducts(ctx, &domain.ProductQuery{
		Page:               input.Page,
		Limit:              input.Limit,
		Category:           input.Category,
		Search:             input.Search,
		Brand:              input.Brand,
		ExternalSourceOnly: input.IsExternalSource,
		OnSale:             input.IsOnSale,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("listing products failed: " + err.Error())
	}

	return &ListProductsOutput{Body: *page}, nil
}

// ListBrands returns the distinct brands of visible products.
func (h *ProductsHandler) ListBrands(
	ctx context.Context,
	_ *struct{},
) (*ListBrandsOutput, error) {
	brands, err := h.source.ListBrands(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing brands failed: " + err.Error())
	}
	if brands == nil {
		brands = []string{}
	}

	resp := &ListBrandsOutput{}
	resp.Body.Brands = brands
	return resp, nil
}

// ListCategories returns the category domain.
func (h *ProductsHandler) ListCategories(
	_ context.Context,
	_ *struct{},
) (*ListCategoriesOutput, error) {
	categories := h.source.Categories()
	if categories == nil {
		categories = []string{}
	}

	resp := &ListCategoriesOutput{}
	resp.Body.Categories = categories
	return resp, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns one page of visible products filtered by category, brand, search text, source and sale status.",
		Tags:        []string{"products"},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/brands",
		Summary:     "List brands",
		Description: "Returns the distinct brands of visible products.",
		Tags:        []string{"products"},
	}, h.ListBrands)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/categories",
		Summary:     "List categories",
		Description: "Returns the categories a listing may be filtered by.",
		Tags:        []string{"products"},
	}, h.ListCategories)
}
