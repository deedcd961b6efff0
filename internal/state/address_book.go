package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"
)

// AddressBook holds the saved addresses of a session.
type AddressBook struct {
	mu        sync.RWMutex
	addresses []entity.Address
}

// Replace swaps the cached list for the backend's list.
func (b *AddressBook) Replace(list []entity.Address) []entity.Address {
	b.mu.Lock()
	b.addresses = slices.Clone(list)
	b.mu.Unlock()

	return slices.Clone(list)
}

// RemoveLocal drops id from the cache ahead of the backend confirming it.
// It reports whether anything was removed.
func (b *AddressBook) RemoveLocal(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := len(b.addresses)
	b.addresses = slices.DeleteFunc(b.addresses, func(addr entity.Address) bool {
		return addr.ID == id
	})

	return len(b.addresses) != before
}

// Clear empties the cache.
func (b *AddressBook) Clear() {
	b.mu.Lock()
	b.addresses = nil
	b.mu.Unlock()
}

// Snapshot returns a copy of the cached list.
func (b *AddressBook) Snapshot() []entity.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.addresses)
}
