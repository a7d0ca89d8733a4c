// README: Order store contract and the seeded in-memory implementation.
package order

import (
	"context"
	"sync"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

// Store is the persistence contract for orders. Attach operations are
// all-or-nothing: they re-check order status under the store's write
// lock (memory) or in a conditional UPDATE (Postgres), so an order can
// never gain a second rider or vendor.
type Store interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id types.ID) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	AttachRider(ctx context.Context, id, riderID types.ID, d PartnerDetails) (bool, error)
	AttachVendor(ctx context.Context, id, vendorID types.ID, d VendorDetails) (bool, error)
	UpdateStatus(ctx context.Context, id types.ID, from, to Status) (bool, error)
	AppendEvent(ctx context.Context, e *Event) error
}

// MemStore keeps orders in insertion order behind one mutex. It is the
// default runtime store, seeded from fixtures.
type MemStore struct {
	mu     sync.Mutex
	orders map[types.ID]*Order
	ids    []types.ID
	events []Event
}

func NewMemStore() *MemStore {
	return &MemStore{orders: make(map[types.ID]*Order)}
}

func (s *MemStore) Create(_ context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[o.ID]; exists {
		return ErrConflict
	}
	cp := *o
	s.orders[o.ID] = &cp
	s.ids = append(s.ids, o.ID)
	return nil
}

func (s *MemStore) Get(_ context.Context, id types.ID) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *MemStore) List(_ context.Context) ([]*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Order, 0, len(s.ids))
	for _, id := range s.ids {
		cp := *s.orders[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemStore) AttachRider(_ context.Context, id, riderID types.ID, d PartnerDetails) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false, ErrNotFound
	}
	if o.RiderID != nil || (o.Status != StatusPending && o.Status != StatusAssigned) {
		return false, nil
	}
	rid := riderID
	det := d
	o.RiderID = &rid
	o.DeliveryPartner = &det
	o.Status = StatusAssigned
	return true, nil
}

func (s *MemStore) AttachVendor(_ context.Context, id, vendorID types.ID, d VendorDetails) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false, ErrNotFound
	}
	if o.VendorID != nil || (o.Status != StatusPending && o.Status != StatusAssigned) {
		return false, nil
	}
	vid := vendorID
	det := d
	o.VendorID = &vid
	o.VendorDetails = &det
	o.Status = StatusAssigned
	return true, nil
}

func (s *MemStore) UpdateStatus(_ context.Context, id types.ID, from, to Status) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false, ErrNotFound
	}
	if o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (s *MemStore) AppendEvent(_ context.Context, e *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	cp.ID = int64(len(s.events) + 1)
	s.events = append(s.events, cp)
	return nil
}
