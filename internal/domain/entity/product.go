// Package entity contains the core business objects of the storefront.
package entity

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Product is a catalog item as the backend describes it.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Stock         int       `json:"stock"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// DiscountPercent returns the whole-number percentage between OriginalPrice and Price.
// It is zero when either price is missing.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.Price <= 0 {
		return 0
	}

	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ProductInput carries the admin-editable fields of a product.
type ProductInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice float64  `json:"originalPrice" validate:"omitempty,gtefield=Price"`
	Category      string   `json:"category" validate:"required"`
	Brand         string   `json:"brand"`
	Images        []string `json:"images" validate:"omitempty,dive,url"`
	Stock         int      `json:"stock" validate:"gte=0"`
}

// ProductQuery filters the product listing. The zero value lists everything.
type ProductQuery struct {
	Keyword  string   `query:"search"`
	Category string   `query:"category"`
	MinPrice *float64 `query:"minPrice"`
	MaxPrice *float64 `query:"maxPrice"`
	Sort     string   `query:"sort"`
	Page     int      `query:"page"`
}

// Values encodes the query the way the backend listing route expects it.
func (q ProductQuery) Values() url.Values {
	values := url.Values{}
	if q.Keyword != "" {
		values.Set("search", q.Keyword)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		values.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		values.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	return values
}

// Key identifies the query in the catalog cache. Equal queries produce equal keys.
func (q ProductQuery) Key() string {
	encoded := q.Values().Encode()
	if encoded == "" {
		return "all"
	}

	return strings.ToLower(encoded)
}

// HomeData is the curated landing-page configuration.
type HomeData struct {
	Trending    []Product `json:"trending"`
	NewArrivals []Product `json:"newArrivals"`
	TopRated    []Product `json:"topRated"`
	BestDeals   []Product `json:"bestDeals"`
}
