// README: Order service implements guarded state changes and the event trail.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidState = errors.New("invalid order state")
	ErrConflict     = errors.New("order state conflict")
	ErrBadRequest   = errors.New("bad request")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	ID              types.ID
	CustomerName    string
	Items           []Item
	DeliveryAddress types.Address
	Total           types.Money
	Priority        Priority
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.ID == "" || len(cmd.Items) == 0 || cmd.DeliveryAddress.Pincode == "" {
		return "", ErrBadRequest
	}
	priority := cmd.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	now := time.Now()
	o := &Order{
		ID:              cmd.ID,
		CustomerName:    cmd.CustomerName,
		Items:           cmd.Items,
		DeliveryAddress: cmd.DeliveryAddress,
		Total:           cmd.Total,
		Priority:        priority,
		Status:          StatusPending,
		CreatedAt:       now,
	}
	if err := s.store.Create(ctx, o); err != nil {
		return "", err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    o.ID,
		FromStatus: StatusNone,
		ToStatus:   StatusPending,
		ActorType:  "admin",
		CreatedAt:  now,
	})
	return o.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Order, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Order, error) {
	return s.store.List(ctx)
}

// AssignRider stamps the delivery partner onto the order and moves it
// to assigned. Fails with ErrInvalidState when the order already has a
// rider or left the assignable states.
func (s *Service) AssignRider(ctx context.Context, id, riderID types.ID, d PartnerDetails) error {
	ok, err := s.store.AttachRider(ctx, id, riderID, d)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    id,
		FromStatus: StatusPending,
		ToStatus:   StatusAssigned,
		ActorType:  "system",
		ActorID:    &riderID,
		CreatedAt:  d.AssignedAt,
	})
	return nil
}

func (s *Service) AssignVendor(ctx context.Context, id, vendorID types.ID, d VendorDetails) error {
	ok, err := s.store.AttachVendor(ctx, id, vendorID, d)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    id,
		FromStatus: StatusPending,
		ToStatus:   StatusAssigned,
		ActorType:  "system",
		ActorID:    &vendorID,
		CreatedAt:  d.AssignedAt,
	})
	return nil
}

func (s *Service) MarkDelivered(ctx context.Context, id types.ID) error {
	ok, err := s.store.UpdateStatus(ctx, id, StatusAssigned, StatusDelivered)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    id,
		FromStatus: StatusAssigned,
		ToStatus:   StatusDelivered,
		ActorType:  "system",
		CreatedAt:  time.Now(),
	})
	return nil
}

func (s *Service) Cancel(ctx context.Context, id types.ID, actorType string) error {
	ok, err := s.store.UpdateStatus(ctx, id, StatusPending, StatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	_ = s.store.AppendEvent(ctx, &Event{
		OrderID:    id,
		FromStatus: StatusPending,
		ToStatus:   StatusCancelled,
		ActorType:  actorType,
		CreatedAt:  time.Now(),
	})
	return nil
}
