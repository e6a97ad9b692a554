package cartstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

var _ port.CartStore = (*MemoryStore)(nil)

type memoryEntry struct {
	lines     []domain.CartLine
	expiresAt time.Time
}

// A MemoryStore keeps cart snapshots in process memory.
//
// Every save pushes the cart expiry ttl into the future. Expired carts
// are reported as missing and swept out during saves at most once per ttl.
type MemoryStore struct {
	mu        sync.RWMutex
	carts     map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *MemoryStore {
	return &MemoryStore{
		carts:     make(map[string]memoryEntry),
		ttl:       ttl,
		now:       now,
		lastSweep: now(),
	}
}

func (s *MemoryStore) LoadCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	const op = "MemoryStore.LoadCart"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	e, ok := s.carts[cartID]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expiresAt) {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrCartNotFound)
	}
	return domain.RestoreCart(e.lines), nil
}

func (s *MemoryStore) SaveCart(
	ctx context.Context, cartID string, cart *domain.Cart,
) error {
	const op = "MemoryStore.SaveCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lines := cart.Lines()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= s.ttl {
		s.sweep(now)
	}
	s.carts[cartID] = memoryEntry{lines: lines, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStore) DeleteCart(ctx context.Context, cartID string) error {
	const op = "MemoryStore.DeleteCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()
	return nil
}

// size counts stored carts, expired ones included.
func (s *MemoryStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}

// sweep must be called with s.mu held.
func (s *MemoryStore) sweep(now time.Time) {
	for id, e := range s.carts {
		if !now.Before(e.expiresAt) {
			delete(s.carts, id)
		}
	}
	s.lastSweep = now
}
