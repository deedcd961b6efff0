// Package state holds the client-side caches of the storefront. Each container
// owns one slice of state and exposes a narrow mutation API; nothing outside the
// container writes its fields.
package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"
)

// Cart holds the last cart the backend returned for a session.
type Cart struct {
	mu   sync.RWMutex
	cart entity.Cart
}

// Replace swaps the cached cart for the backend's lines.
func (c *Cart) Replace(lines []entity.CartLine) entity.Cart {
	cart := entity.NewCart(lines)

	c.mu.Lock()
	c.cart = cart
	c.mu.Unlock()

	return cloneCart(cart)
}

// Clear empties the cache.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.cart = entity.Cart{}
	c.mu.Unlock()
}

// Snapshot returns a copy of the cached cart.
func (c *Cart) Snapshot() entity.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneCart(c.cart)
}

func cloneCart(cart entity.Cart) entity.Cart {
	return entity.Cart{Lines: slices.Clone(cart.Lines)}
}
