// README: Matching service exposes the rider and vendor engines over the candidate stores.
package matching

import (
	"context"

	"github.com/rashmitha1620/admin-sub000/internal/config"
	"github.com/rashmitha1620/admin-sub000/internal/geo"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/pricing"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

// OrderSource is the slice of the order service the matcher needs.
type OrderSource interface {
	Get(ctx context.Context, id types.ID) (*order.Order, error)
}

type Service struct {
	riders  rider.Store
	vendors vendor.Store
	orders  OrderSource
	est     geo.Estimator
	pricing *pricing.Service
	cfg     config.MatchingConfig

	riderEngine  *Engine[rider.Rider]
	vendorEngine *Engine[vendor.Vendor]
}

func NewService(
	riders rider.Store,
	vendors vendor.Store,
	orders OrderSource,
	est geo.Estimator,
	pricingSvc *pricing.Service,
	cfg config.MatchingConfig,
) *Service {
	return &Service{
		riders:       riders,
		vendors:      vendors,
		orders:       orders,
		est:          est,
		pricing:      pricingSvc,
		cfg:          cfg,
		riderEngine:  NewEngine(RiderProfile(), est),
		vendorEngine: NewEngine(VendorProfile(), est),
	}
}

// RiderStatus is the details-lookup view of a rider.
type RiderStatus struct {
	Rider             rider.Rider
	Available         bool
	AvailableCapacity int
}

// VendorStatus is the details-lookup view of a vendor.
type VendorStatus struct {
	Vendor            vendor.Vendor
	Available         bool
	AvailableCapacity int
}

func (s *Service) FindMatchingRiders(ctx context.Context, orderID types.ID, limit int) ([]Result[rider.Rider], error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.riders.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	return s.riderEngine.FindMatching(candidates, o, limit), nil
}

func (s *Service) FindMatchingVendors(ctx context.Context, orderID types.ID, limit int) ([]Result[vendor.Vendor], error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.vendors.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	return s.vendorEngine.FindMatching(candidates, o, limit), nil
}

func (s *Service) GetRiderRecommendations(ctx context.Context, orderID types.ID) (*Recommendation[rider.Rider], error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.riders.List(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.riderEngine.Recommend(candidates, o, s.riderAnalysis(o), riderCriteria())
	return &rec, nil
}

func (s *Service) GetVendorRecommendations(ctx context.Context, orderID types.ID) (*Recommendation[vendor.Vendor], error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.vendors.List(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.vendorEngine.Recommend(candidates, o, s.vendorAnalysis(o), vendorCriteria())
	return &rec, nil
}

// SearchRiders filters riders by a free-text term without scoring.
func (s *Service) SearchRiders(ctx context.Context, term string) ([]rider.Rider, error) {
	candidates, err := s.riders.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.riderEngine.Search(term, candidates), nil
}

// SearchRidersForOrder additionally scores the hits against an order
// and returns them best-first.
func (s *Service) SearchRidersForOrder(ctx context.Context, term string, orderID types.ID) ([]Result[rider.Rider], error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.riders.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.riderEngine.SearchRanked(term, candidates, o), nil
}

func (s *Service) SearchVendors(ctx context.Context, term string) ([]vendor.Vendor, error) {
	candidates, err := s.vendors.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.vendorEngine.Search(term, candidates), nil
}

func (s *Service) SearchVendorsForOrder(ctx context.Context, term string, orderID types.ID) ([]Result[vendor.Vendor], error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.vendors.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.vendorEngine.SearchRanked(term, candidates, o), nil
}

func (s *Service) GetRiderDetails(ctx context.Context, id types.ID) (*RiderStatus, error) {
	r, err := s.riders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RiderStatus{
		Rider:             *r,
		Available:         r.Available(),
		AvailableCapacity: r.AvailableCapacity(),
	}, nil
}

func (s *Service) GetVendorDetails(ctx context.Context, id types.ID) (*VendorStatus, error) {
	v, err := s.vendors.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VendorStatus{
		Vendor:            *v,
		Available:         v.Available(),
		AvailableCapacity: v.AvailableCapacity(),
	}, nil
}

func (s *Service) ListRiders(ctx context.Context) ([]rider.Rider, error) {
	return s.riders.List(ctx)
}

func (s *Service) ListVendors(ctx context.Context) ([]vendor.Vendor, error) {
	return s.vendors.List(ctx)
}

func (s *Service) riderAnalysis(o *order.Order) OrderAnalysis {
	a := OrderAnalysis{
		OrderID:         o.ID,
		PickupPincode:   o.OriginPincode(),
		DeliveryPincode: o.DeliveryAddress.Pincode,
		ItemCount:       o.ItemCount(),
		OrderValue:      o.Total,
		Priority:        o.Priority,
	}
	a.DistanceKm = round1(s.est.DistanceKm(a.PickupPincode, a.DeliveryPincode))
	if s.pricing != nil {
		fee := s.pricing.Estimate(a.DistanceKm, o.Priority == order.PriorityUrgent)
		a.FeeEstimate = &fee
	}
	return a
}

func (s *Service) vendorAnalysis(o *order.Order) OrderAnalysis {
	return OrderAnalysis{
		OrderID:         o.ID,
		Categories:      o.Categories(),
		DeliveryPincode: o.DeliveryAddress.Pincode,
		ItemCount:       o.ItemCount(),
		OrderValue:      o.Total,
		Priority:        o.Priority,
	}
}
