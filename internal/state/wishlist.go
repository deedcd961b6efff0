package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"
)

// Wishlist holds the products a shopper saved for later.
type Wishlist struct {
	mu       sync.RWMutex
	products []entity.Product
}

// Replace swaps the cached wishlist.
func (w *Wishlist) Replace(list []entity.Product) []entity.Product {
	w.mu.Lock()
	w.products = slices.Clone(list)
	w.mu.Unlock()

	return slices.Clone(list)
}

// Snapshot returns a copy of the cached wishlist.
func (w *Wishlist) Snapshot() []entity.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Clone(w.products)
}

// Contains reports whether productID is wishlisted.
func (w *Wishlist) Contains(productID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.ContainsFunc(w.products, func(p entity.Product) bool {
		return p.ID == productID
	})
}
