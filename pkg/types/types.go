// Package domain defines the core catalog types shared by the discovery
// controller, the API client and the catalog fixture server.
package domain

import (
	"time"
)

// SortKey selects the ordering applied to a fetched product page.
type SortKey string

// Sort key constants.
const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// SortKeys lists every supported sort key in display order.
var SortKeys = []SortKey{SortNewest, SortPriceLow, SortPriceHigh, SortName}

// Valid reports whether k is a supported sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortPriceLow, SortPriceHigh, SortName:
		return true
	default:
		return false
	}
}

// Product is a single storefront product as returned by the listing endpoint.
type Product struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Price                float64   `json:"price"`
	DiscountPrice        *float64  `json:"discountPrice,omitempty"`
	Stock                int       `json:"stock"`
	Category             string    `json:"category"`
	Brand                string    `json:"brand"`
	CreatedAt            time.Time `json:"createdAt"`
	IsFeatured           bool      `json:"isFeatured"`
	IsVisible            bool      `json:"isVisible"`
	IsFromExternalSource bool      `json:"isFromExternalSource"`
}

// EffectivePrice returns the discount price when one is set, otherwise the
// list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Discounted reports whether the product carries a discount price.
func (p *Product) Discounted() bool {
	return p.DiscountPrice != nil
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductQuery holds the parameters of a listing fetch.
type ProductQuery struct {
	Page               int
	Limit              int
	Category           string
	Search             string
	Brand              string
	ExternalSourceOnly bool
	OnSale             bool
}

// Pagination describes where a product page sits in the full result set.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductPage is the response of the listing endpoint.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// BrandList is the response of the brand list endpoint.
type BrandList struct {
	Brands []string `json:"brands"`
}

// CategoryList is the response of the category list endpoint.
type CategoryList struct {
	Categories []string `json:"categories"`
}
