package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"
)

// Catalog is the product cache shared by every session. Every slice is
// replaced on fetch; nothing is merged.
type Catalog struct {
	mu       sync.RWMutex
	listings map[string][]entity.Product
	products map[string]entity.Product
	reviews  map[string][]entity.Review
	home     *entity.HomeData
}

// NewCatalog returns an empty catalog cache.
func NewCatalog() *Catalog {
	return &Catalog{
		listings: make(map[string][]entity.Product),
		products: make(map[string]entity.Product),
		reviews:  make(map[string][]entity.Review),
	}
}

// ReplaceListing stores the result of a product query.
func (c *Catalog) ReplaceListing(key string, list []entity.Product) {
	c.mu.Lock()
	c.listings[key] = slices.Clone(list)
	c.mu.Unlock()
}

// Listing returns the last result of a product query.
func (c *Catalog) Listing(key string) ([]entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list, ok := c.listings[key]

	return slices.Clone(list), ok
}

// ReplaceProduct stores the detail of one product.
func (c *Catalog) ReplaceProduct(product entity.Product) {
	c.mu.Lock()
	c.products[product.ID] = product
	c.mu.Unlock()
}

// Product returns the cached detail of a product.
func (c *Catalog) Product(id string) (entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[id]

	return product, ok
}

// ForgetProduct drops a product from every slice, used after an admin deletes it.
func (c *Catalog) ForgetProduct(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.products, id)
	delete(c.reviews, id)
	for key, list := range c.listings {
		c.listings[key] = slices.DeleteFunc(list, func(p entity.Product) bool { return p.ID == id })
	}
}

// ReplaceReviews stores the reviews of a product.
func (c *Catalog) ReplaceReviews(productID string, list []entity.Review) {
	c.mu.Lock()
	c.reviews[productID] = slices.Clone(list)
	c.mu.Unlock()
}

// Reviews returns the cached reviews of a product, empty when never fetched.
func (c *Catalog) Reviews(productID string) []entity.Review {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.reviews[productID])
}

// ReplaceHome stores the landing-page data.
func (c *Catalog) ReplaceHome(home *entity.HomeData) {
	c.mu.Lock()
	c.home = home
	c.mu.Unlock()
}

// Home returns the cached landing-page data.
func (c *Catalog) Home() (*entity.HomeData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.home, c.home != nil
}
