// README: Assignment simulator: commits a candidate to an order and updates load state.
package dispatch

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

// Fixed display ETAs returned by assignment. Deliberately not derived
// from the scoring engine's computed minutes; see DESIGN.md.
const (
	riderArrivalEstimate = "15-20 minutes"
	vendorReadyEstimate  = "30-45 minutes"
)

type Service struct {
	riders  rider.Store
	vendors vendor.Store
	orders  *order.Service
	log     *Log
	delay   time.Duration
}

// NewService wires the assignment simulator. log may be nil when no
// Redis is configured. delay simulates the network round-trip of the
// environment this engine was lifted from.
func NewService(riders rider.Store, vendors vendor.Store, orders *order.Service, assignLog *Log, delay time.Duration) *Service {
	return &Service{riders: riders, vendors: vendors, orders: orders, log: assignLog, delay: delay}
}

// Assignment is the result of a successful commit.
type Assignment struct {
	OrderID          types.ID
	TrackingID       string
	EstimatedArrival string
	Rider            *rider.Rider
	Vendor           *vendor.Vendor
}

// AssignOrderToRider reserves one slot on the rider and stamps the
// partner details onto the order. The reservation is the single write
// path for the load counter, so the rider can never exceed MaxOrders
// even under concurrent calls; on any later failure it is rolled back.
func (s *Service) AssignOrderToRider(ctx context.Context, orderID, riderID types.ID) (a *Assignment, err error) {
	defer func() { observeAssignment("rider", err) }()

	if err = s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	if _, err = s.orders.Get(ctx, orderID); err != nil {
		return nil, err
	}
	r, err := s.riders.Reserve(ctx, riderID)
	if err != nil {
		return nil, err
	}

	trackingID := newTrackingID()
	details := order.PartnerDetails{
		Name:        r.Name,
		Phone:       r.Phone,
		VehicleType: r.VehicleType,
		TrackingID:  trackingID,
		AssignedAt:  time.Now(),
	}
	if err = s.orders.AssignRider(ctx, orderID, riderID, details); err != nil {
		if relErr := s.riders.Release(ctx, riderID); relErr != nil {
			log.Printf("release rider %s after failed assign: %v", riderID, relErr)
		}
		return nil, err
	}
	s.recordAssignment(ctx, orderID, riderID, trackingID)

	return &Assignment{
		OrderID:          orderID,
		TrackingID:       trackingID,
		EstimatedArrival: riderArrivalEstimate,
		Rider:            r,
	}, nil
}

// AssignOrderToVendor mirrors AssignOrderToRider for vendors.
func (s *Service) AssignOrderToVendor(ctx context.Context, orderID, vendorID types.ID) (a *Assignment, err error) {
	defer func() { observeAssignment("vendor", err) }()

	if err = s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	if _, err = s.orders.Get(ctx, orderID); err != nil {
		return nil, err
	}
	v, err := s.vendors.Reserve(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	trackingID := newTrackingID()
	details := order.VendorDetails{
		Name:       v.Name,
		Pincode:    v.Pincode,
		AssignedAt: time.Now(),
	}
	if err = s.orders.AssignVendor(ctx, orderID, vendorID, details); err != nil {
		if relErr := s.vendors.Release(ctx, vendorID); relErr != nil {
			log.Printf("release vendor %s after failed assign: %v", vendorID, relErr)
		}
		return nil, err
	}
	s.recordAssignment(ctx, orderID, vendorID, trackingID)

	return &Assignment{
		OrderID:          orderID,
		TrackingID:       trackingID,
		EstimatedArrival: vendorReadyEstimate,
		Vendor:           v,
	}, nil
}

// Complete marks an assigned order delivered and frees the capacity of
// everyone attached to it, making them assignable again.
func (s *Service) Complete(ctx context.Context, orderID types.ID) error {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.MarkDelivered(ctx, orderID); err != nil {
		return err
	}
	if o.RiderID != nil {
		if err := s.riders.Release(ctx, *o.RiderID); err != nil {
			log.Printf("release rider %s on completion: %v", *o.RiderID, err)
		}
	}
	if o.VendorID != nil {
		if err := s.vendors.Release(ctx, *o.VendorID); err != nil {
			log.Printf("release vendor %s on completion: %v", *o.VendorID, err)
		}
	}
	return nil
}

// TrackingInfo is the assignment record shown on the tracking panel.
type TrackingInfo struct {
	OrderID    types.ID
	TrackingID string
	AssignedAt time.Time
}

// Tracking resolves the tracking record for an assigned order, reading
// the Redis log when configured and falling back to the details stamped
// on the order itself. Orders without a rider assignment have nothing
// to track.
func (s *Service) Tracking(ctx context.Context, orderID types.ID) (*TrackingInfo, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	info := &TrackingInfo{OrderID: orderID}
	if s.log != nil {
		if id, ok, err := s.log.TrackingID(ctx, orderID); err == nil && ok {
			info.TrackingID = id
		}
		if at, ok, err := s.log.AssignedAt(ctx, orderID); err == nil && ok {
			info.AssignedAt = at
		}
	}
	if info.TrackingID == "" && o.DeliveryPartner != nil {
		info.TrackingID = o.DeliveryPartner.TrackingID
		info.AssignedAt = o.DeliveryPartner.AssignedAt
	}
	if info.TrackingID == "" {
		return nil, order.ErrInvalidState
	}
	return info, nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

func (s *Service) recordAssignment(ctx context.Context, orderID, candidateID types.ID, trackingID string) {
	if s.log == nil {
		return
	}
	if err := s.log.RecordAssignment(ctx, orderID, candidateID, trackingID); err != nil {
		log.Printf("record assignment %s: %v", orderID, err)
	}
}

func newTrackingID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return "TRK-" + strings.ToUpper(hex.EncodeToString(b[:]))
}

func isNotFound(err error) bool {
	return errors.Is(err, rider.ErrNotFound) ||
		errors.Is(err, vendor.ErrNotFound) ||
		errors.Is(err, order.ErrNotFound)
}

func isUnavailable(err error) bool {
	return errors.Is(err, rider.ErrUnavailable) || errors.Is(err, vendor.ErrUnavailable)
}
