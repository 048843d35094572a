package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/session"
)

type fakeClock struct{ ns atomic.Int64 }

func newFakeClock() *fakeClock {
	c := &fakeClock{}
	c.ns.Store(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixNano())
	return c
}

func (c *fakeClock) Now() time.Time          { return time.Unix(0, c.ns.Load()) }
func (c *fakeClock) Advance(d time.Duration) { c.ns.Add(int64(d)) }

func TestMemoryStore_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := session.NewMemoryStore(time.Hour, 0)
	defer store.Close()

	t.Run("returns uuid token", func(t *testing.T) {
		token, err := store.Create(ctx, session.New())
		require.NoError(t, err)
		_, err = uuid.Parse(token)
		assert.NoError(t, err)
	})

	t.Run("nil session", func(t *testing.T) {
		_, err := store.Create(ctx, nil)
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("closed store", func(t *testing.T) {
		closed := session.NewMemoryStore(time.Hour, time.Millisecond)
		require.NoError(t, closed.Close())
		require.NoError(t, closed.Close())

		_, err := closed.Create(ctx, session.New())
		assert.ErrorIs(t, err, session.ErrStoreClosed)
	})
}

func TestMemoryStore_With(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("mutations persist", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(time.Hour, 0)
		defer store.Close()

		token, err := store.Create(ctx, session.New())
		require.NoError(t, err)

		err = store.With(ctx, token, func(s *session.Session) error {
			return s.SetType(ctx, content.Email)
		})
		require.NoError(t, err)

		err = store.With(ctx, token, func(s *session.Session) error {
			assert.Equal(t, content.Email, s.Type())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(time.Hour, 0)
		defer store.Close()

		err := store.With(ctx, "missing", func(*session.Session) error { return nil })
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("callback error is returned", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(time.Hour, 0)
		defer store.Close()

		token, err := store.Create(ctx, session.New())
		require.NoError(t, err)

		boom := errors.New("boom")
		assert.ErrorIs(t, store.With(ctx, token, func(*session.Session) error { return boom }), boom)
	})

	t.Run("serializes access", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(time.Hour, 0)
		defer store.Close()

		token, err := store.Create(ctx, session.New())
		require.NoError(t, err)

		var active, overlaps atomic.Int32
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.With(ctx, token, func(s *session.Session) error {
					if active.Add(1) > 1 {
						overlaps.Add(1)
					}
					defer active.Add(-1)
					_, err := s.Generate(ctx)
					return err
				})
			}()
		}
		wg.Wait()

		assert.Zero(t, overlaps.Load())
	})
}

func TestMemoryStore_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	noop := func(*session.Session) error { return nil }

	t.Run("expired session is not returned", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := session.NewMemoryStore(time.Minute, 0, session.WithClock(clock.Now))
		defer store.Close()

		token, err := store.Create(ctx, session.New())
		require.NoError(t, err)

		clock.Advance(2 * time.Minute)
		assert.ErrorIs(t, store.With(ctx, token, noop), session.ErrSessionExpired)
		assert.ErrorIs(t, store.With(ctx, token, noop), session.ErrSessionNotFound)
		assert.Zero(t, store.Len())
	})

	t.Run("access extends ttl", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := session.NewMemoryStore(time.Minute, 0, session.WithClock(clock.Now))
		defer store.Close()

		token, err := store.Create(ctx, session.New())
		require.NoError(t, err)

		for range 5 {
			clock.Advance(45 * time.Second)
			require.NoError(t, store.With(ctx, token, noop))
		}
	})

	t.Run("delete expired", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		store := session.NewMemoryStore(time.Minute, 0, session.WithClock(clock.Now))
		defer store.Close()

		old, err := store.Create(ctx, session.New())
		require.NoError(t, err)
		clock.Advance(50 * time.Second)
		fresh, err := store.Create(ctx, session.New())
		require.NoError(t, err)
		clock.Advance(20 * time.Second)

		require.NoError(t, store.DeleteExpired(ctx))
		assert.Equal(t, 1, store.Len())
		assert.ErrorIs(t, store.With(ctx, old, noop), session.ErrSessionNotFound)
		assert.NoError(t, store.With(ctx, fresh, noop))
	})

	t.Run("cleanup loop", func(t *testing.T) {
		t.Parallel()
		store := session.NewMemoryStore(10*time.Millisecond, 5*time.Millisecond)
		defer store.Close()

		_, err := store.Create(ctx, session.New())
		require.NoError(t, err)

		assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := session.NewMemoryStore(time.Hour, 0)
	defer store.Close()

	token, err := store.Create(ctx, session.New())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))
	assert.ErrorIs(t, store.Delete(ctx, token), session.ErrSessionNotFound)
	assert.ErrorIs(t, store.With(ctx, token, func(*session.Session) error { return nil }), session.ErrSessionNotFound)
}
