// README: Rider store contract and the in-memory implementation.
package rider

import (
	"context"
	"errors"
	"sync"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

var (
	ErrNotFound = errors.New("rider not found")
	// ErrUnavailable covers both an unavailable status and a full load.
	ErrUnavailable = errors.New("rider unavailable or at capacity")
)

// Store is the single write path for rider load counters. Reserve
// checks availability and increments the counter atomically, so two
// concurrent assignments cannot both take a rider's last slot.
type Store interface {
	List(ctx context.Context) ([]Rider, error)
	Get(ctx context.Context, id types.ID) (*Rider, error)
	Reserve(ctx context.Context, id types.ID) (*Rider, error)
	Release(ctx context.Context, id types.ID) error
}

type MemStore struct {
	mu     sync.Mutex
	riders map[types.ID]*Rider
	ids    []types.ID
}

func NewMemStore(riders []Rider) *MemStore {
	s := &MemStore{riders: make(map[types.ID]*Rider, len(riders))}
	for i := range riders {
		cp := riders[i]
		s.riders[cp.ID] = &cp
		s.ids = append(s.ids, cp.ID)
	}
	return s
}

func (s *MemStore) List(_ context.Context) ([]Rider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Rider, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, *s.riders[id])
	}
	return out, nil
}

func (s *MemStore) Get(_ context.Context, id types.ID) (*Rider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.riders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *MemStore) Reserve(_ context.Context, id types.ID) (*Rider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.riders[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !r.Available() {
		return nil, ErrUnavailable
	}
	r.CurrentOrders++
	cp := *r
	return &cp, nil
}

func (s *MemStore) Release(_ context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.riders[id]
	if !ok {
		return ErrNotFound
	}
	if r.CurrentOrders > 0 {
		r.CurrentOrders--
	}
	return nil
}
