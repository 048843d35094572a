package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the idle time after which a stored session expires.
const DefaultTTL = 30 * time.Minute

type entry struct {
	mu        sync.Mutex
	sess      *Session
	expiresAt atomic.Int64 // unix nanoseconds
	removed   bool         // guarded by mu
}

// MemoryStore implements Store with in-memory storage. Sessions expire after
// ttl without access; every With call extends the expiry.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
	ticker   *time.Ticker
	done     chan struct{}
	closed   bool
	once     sync.Once
}

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(m *MemoryStore) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemoryStore creates a new in-memory session store.
// A non-positive ttl falls back to DefaultTTL; a non-positive cleanupInterval disables the cleanup loop.
func NewMemoryStore(ttl, cleanupInterval time.Duration, opts ...StoreOption) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	store := &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(store)
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Create stores s under a fresh random token.
func (m *MemoryStore) Create(ctx context.Context, s *Session) (string, error) {
	if s == nil {
		return "", ErrInvalidSession
	}

	token := uuid.NewString()
	e := &entry{sess: s}
	e.expiresAt.Store(m.now().Add(m.ttl).UnixNano())

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return "", ErrStoreClosed
	}
	m.sessions[token] = e
	return token, nil
}

// With locks the session identified by token for the duration of fn.
// Calls for different tokens run in parallel.
func (m *MemoryStore) With(ctx context.Context, token string, fn func(*Session) error) error {
	m.mu.RLock()
	e, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return ErrSessionNotFound
	}

	if m.expired(e) {
		m.remove(token, e)
		return ErrSessionExpired
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed {
		return ErrSessionNotFound
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e.expiresAt.Store(m.now().Add(m.ttl).UnixNano())
	return fn(e.sess)
}

// Delete removes a session by token
func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	m.mu.RLock()
	e, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return ErrSessionNotFound
	}
	m.remove(token, e)
	return nil
}

// DeleteExpired removes all expired sessions
func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	m.mu.RLock()
	var stale []string
	for token, e := range m.sessions {
		if m.expired(e) {
			stale = append(stale, token)
		}
	}
	m.mu.RUnlock()

	for _, token := range stale {
		m.mu.RLock()
		e, exists := m.sessions[token]
		m.mu.RUnlock()
		if exists && m.expired(e) {
			m.remove(token, e)
		}
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included until cleanup.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the cleanup goroutine and rejects new sessions
func (m *MemoryStore) Close() error {
	m.once.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()

		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

func (m *MemoryStore) expired(e *entry) bool {
	return m.now().UnixNano() > e.expiresAt.Load()
}

// remove waits for any in-flight With on e before dropping it.
func (m *MemoryStore) remove(token string, e *entry) {
	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()

	m.mu.Lock()
	if m.sessions[token] == e {
		delete(m.sessions, token)
	}
	m.mu.Unlock()
}

// cleanupLoop runs periodic cleanup of expired sessions
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
