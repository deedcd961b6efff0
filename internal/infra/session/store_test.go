package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func sampleSession() *entity.Session {
	return &entity.Session{
		ID:           "sess-1",
		User:         entity.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: entity.RoleUser},
		BackendToken: "backend-token",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ExpiresAt:    time.Date(2026, 1, 4, 3, 4, 5, 0, time.UTC),
	}
}

func setupRedisStore(t *testing.T) (repository.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_SaveFind(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession(), time.Hour))
	assert.True(t, mr.Exists("session:sess-1"))
	assert.Equal(t, time.Hour, mr.TTL("session:sess-1"))

	found, err := store.Find(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sampleSession(), found)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession(), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Find(ctx, "sess-1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession(), time.Hour))
	require.NoError(t, store.Delete(ctx, "sess-1"))
	require.NoError(t, store.Delete(ctx, "unknown"))

	_, err := store.Find(ctx, "sess-1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	store, mr := setupRedisStore(t)

	require.NoError(t, mr.Set("session:bad", "{not json"))

	_, err := store.Find(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestMemoryStore(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store := newMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSession(), time.Hour))

	found, err := store.Find(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", found.BackendToken)

	found.BackendToken = "mutated"
	again, err := store.Find(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", again.BackendToken)

	now = now.Add(2 * time.Hour)
	_, err = store.Find(ctx, "sess-1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.Empty(t, store.sessions)

	require.NoError(t, store.Delete(ctx, "missing"))
}

func TestMemoryStore_SweepDropsUnvisited(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store := newMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	kept := sampleSession()
	kept.ID = "sess-2"
	require.NoError(t, store.Save(ctx, sampleSession(), time.Minute))
	require.NoError(t, store.Save(ctx, kept, time.Hour))

	assert.Equal(t, 0, store.Sweep(now))
	assert.Equal(t, 1, store.Sweep(now.Add(2*time.Minute)))

	_, err := store.Find(ctx, "sess-2")
	assert.NoError(t, err)
}

func TestNewSessionRepository_MemorySweepsInBackground(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Session: &config.SessionConfig{
		Store:         constants.SessionStoreMemory,
		SweepInterval: 5 * time.Millisecond,
	}}

	repo, err := NewSessionRepository(StoreParams{Lc: lc, Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	store, ok := repo.(*memoryStore)
	require.True(t, ok)

	lc.RequireStart()
	defer lc.RequireStop()

	require.NoError(t, store.Save(context.Background(), sampleSession(), time.Millisecond))

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()

		return len(store.sessions) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNewSessionRepository_RejectsUnknownStore(t *testing.T) {
	cfg := &config.Config{Session: &config.SessionConfig{Store: "etcd"}}

	_, err := NewSessionRepository(StoreParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: discardLogger()})
	assert.ErrorContains(t, err, "etcd")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
