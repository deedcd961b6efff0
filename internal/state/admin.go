package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"
)

// Admin holds the back-office lists. Each list is replaced wholesale by a
// fetch; deletions remove locally first and are corrected by the next fetch.
type Admin struct {
	mu       sync.RWMutex
	users    []entity.User
	products []entity.Product
	orders   []entity.Order
	reviews  []entity.Review
	stats    *entity.DashboardStats
}

// ReplaceUsers swaps the cached user list.
func (a *Admin) ReplaceUsers(list []entity.User) []entity.User {
	a.mu.Lock()
	a.users = slices.Clone(list)
	a.mu.Unlock()

	return slices.Clone(list)
}

// Users returns a copy of the cached user list.
func (a *Admin) Users() []entity.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.users)
}

// RemoveUserLocal drops a user ahead of the backend confirming it.
func (a *Admin) RemoveUserLocal(id string) {
	a.mu.Lock()
	a.users = slices.DeleteFunc(a.users, func(u entity.User) bool { return u.ID == id })
	a.mu.Unlock()
}

// ReplaceProducts swaps the cached product list.
func (a *Admin) ReplaceProducts(list []entity.Product) []entity.Product {
	a.mu.Lock()
	a.products = slices.Clone(list)
	a.mu.Unlock()

	return slices.Clone(list)
}

// Products returns a copy of the cached product list.
func (a *Admin) Products() []entity.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.products)
}

// RemoveProductLocal drops a product ahead of the backend confirming it.
func (a *Admin) RemoveProductLocal(id string) {
	a.mu.Lock()
	a.products = slices.DeleteFunc(a.products, func(p entity.Product) bool { return p.ID == id })
	a.mu.Unlock()
}

// ReplaceOrders swaps the cached order list.
func (a *Admin) ReplaceOrders(list []entity.Order) []entity.Order {
	a.mu.Lock()
	a.orders = slices.Clone(list)
	a.mu.Unlock()

	return slices.Clone(list)
}

// Orders returns a copy of the cached order list.
func (a *Admin) Orders() []entity.Order {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.orders)
}

// ReplaceReviews swaps the cached review list.
func (a *Admin) ReplaceReviews(list []entity.Review) []entity.Review {
	a.mu.Lock()
	a.reviews = slices.Clone(list)
	a.mu.Unlock()

	return slices.Clone(list)
}

// Reviews returns a copy of the cached review list.
func (a *Admin) Reviews() []entity.Review {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.reviews)
}

// RemoveReviewLocal drops a review ahead of the backend confirming it.
func (a *Admin) RemoveReviewLocal(id string) {
	a.mu.Lock()
	a.reviews = slices.DeleteFunc(a.reviews, func(r entity.Review) bool { return r.ID == id })
	a.mu.Unlock()
}

// SetStats caches the dashboard summary.
func (a *Admin) SetStats(stats *entity.DashboardStats) {
	a.mu.Lock()
	a.stats = stats
	a.mu.Unlock()
}

// Stats returns the cached dashboard summary, nil before the first fetch.
func (a *Admin) Stats() *entity.DashboardStats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.stats == nil {
		return nil
	}
	stats := *a.stats

	return &stats
}
