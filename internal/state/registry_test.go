package state

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_WorkspacePerSession(t *testing.T) {
	r := NewRegistry()

	a := r.Workspace("a")
	a.Cart.Replace([]entity.CartLine{{ProductID: "p1", Quantity: 1}})

	assert.Same(t, a, r.Workspace("a"))
	assert.True(t, r.Workspace("b").Cart.Snapshot().IsEmpty())
	assert.Equal(t, 2, r.Len())

	r.Discard("a")
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Workspace("a").Cart.Snapshot().IsEmpty())
}

func TestRegistry_ConcurrentWorkspace(t *testing.T) {
	r := NewRegistry()
	got := make([]*Workspace, 32)

	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = r.Workspace("shared")
		}()
	}
	wg.Wait()

	for _, ws := range got {
		assert.Same(t, got[0], ws)
	}
	assert.Equal(t, 1, r.Len())
}

func TestCart_SnapshotIsCopy(t *testing.T) {
	c := &Cart{}
	c.Replace([]entity.CartLine{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 0}})

	snap := c.Snapshot()
	assert.Len(t, snap.Lines, 1)

	snap.Lines[0].Quantity = 99
	assert.Equal(t, 2, c.Snapshot().Lines[0].Quantity)
}

func TestAddressBook_RemoveLocal(t *testing.T) {
	b := &AddressBook{}
	b.Replace(checkoutAddresses)

	assert.True(t, b.RemoveLocal("A"))
	assert.False(t, b.RemoveLocal("A"))
	assert.Equal(t, []entity.Address{checkoutAddresses[1]}, b.Snapshot())
}

func TestRegistry_SweepDropsExpiredWorkspaces(t *testing.T) {
	r := NewRegistry()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r.Open("short", now.Add(time.Minute)).Orders.SetConfirmed("ORD1")
	r.Open("long", now.Add(time.Hour))
	r.Workspace("unknown-expiry")

	assert.Equal(t, 0, r.Sweep(now))
	assert.Equal(t, 1, r.Sweep(now.Add(2*time.Minute)))
	assert.Equal(t, 2, r.Len())
	assert.Empty(t, r.Workspace("short").Orders.Confirmed())

	// Open on a known session extends its deadline and keeps the state.
	ws := r.Open("long", now.Add(3*time.Hour))
	assert.Same(t, ws, r.Workspace("long"))
	assert.Equal(t, 0, r.Sweep(now.Add(2*time.Hour)))
}

func TestSweeper_RunsUntilStopped(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.Open(id, time.Now().Add(-time.Second))
	}

	sweeper := NewSweeper("workspaces", 5*time.Millisecond, r.Sweep, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, sweeper.Start(context.Background()))

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
}

func TestSweeper_StopWithoutStart(t *testing.T) {
	sweeper := NewSweeper("idle", time.Minute, func(time.Time) int { return 0 }, slog.Default())

	assert.NoError(t, sweeper.Stop(context.Background()))
}
