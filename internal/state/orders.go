package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"
)

// Orders holds a shopper's order history, the last opened order and the
// reference of the order just confirmed by checkout.
type Orders struct {
	mu        sync.RWMutex
	orders    []entity.Order
	detail    *entity.Order
	confirmed string
}

// Replace swaps the cached history.
func (o *Orders) Replace(list []entity.Order) []entity.Order {
	o.mu.Lock()
	o.orders = slices.Clone(list)
	o.mu.Unlock()

	return slices.Clone(list)
}

// Snapshot returns a copy of the cached history.
func (o *Orders) Snapshot() []entity.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return slices.Clone(o.orders)
}

// SetDetail caches the order being viewed.
func (o *Orders) SetDetail(order *entity.Order) {
	o.mu.Lock()
	o.detail = order
	o.mu.Unlock()
}

// Detail returns the cached order if it has id.
func (o *Orders) Detail(id string) (*entity.Order, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.detail == nil || o.detail.ID != id {
		return nil, false
	}
	order := *o.detail

	return &order, true
}

// SetConfirmed stores the reference of a freshly verified order.
func (o *Orders) SetConfirmed(orderID string) {
	o.mu.Lock()
	o.confirmed = orderID
	o.mu.Unlock()
}

// Confirmed returns the stored reference, empty when there is none.
func (o *Orders) Confirmed() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.confirmed
}

// ClearConfirmed forgets the stored reference.
func (o *Orders) ClearConfirmed() {
	o.mu.Lock()
	o.confirmed = ""
	o.mu.Unlock()
}
