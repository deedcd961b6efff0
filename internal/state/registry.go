package state

import (
	"sync"
	"time"
)

// Workspace is the state owned by one authenticated session. It exists from
// sign-in until sign-out or until the session expires.
type Workspace struct {
	Cart      *Cart
	Addresses *AddressBook
	Orders    *Orders
	Wishlist  *Wishlist
	Admin     *Admin
	Checkout  *Checkout
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		Cart:      &Cart{},
		Addresses: &AddressBook{},
		Orders:    &Orders{},
		Wishlist:  &Wishlist{},
		Admin:     &Admin{},
		Checkout:  NewCheckout(),
	}
}

type registryEntry struct {
	workspace *Workspace
	// deadline is zero until the owning session's expiry is known.
	deadline time.Time
}

// Registry maps session ids to their workspaces. Workspaces live in this
// process only.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// Workspace returns the workspace of sessionID, creating it on first use.
func (r *Registry) Workspace(sessionID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.entry(sessionID).workspace
}

// Open returns the workspace of sessionID and records when its session
// expires. Sweep drops the workspace once that time has passed.
func (r *Registry) Open(sessionID string, deadline time.Time) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entry(sessionID)
	entry.deadline = deadline

	return entry.workspace
}

func (r *Registry) entry(sessionID string) *registryEntry {
	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &registryEntry{workspace: NewWorkspace()}
		r.entries[sessionID] = entry
	}

	return entry
}

// Discard drops everything held for sessionID.
func (r *Registry) Discard(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// Sweep drops workspaces whose session expired before now and returns how
// many were dropped.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, entry := range r.entries {
		if !entry.deadline.IsZero() && now.After(entry.deadline) {
			delete(r.entries, id)
			dropped++
		}
	}

	return dropped
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
