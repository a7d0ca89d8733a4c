// README: Matching service tests over in-memory stores.
package matching

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rashmitha1620/admin-sub000/internal/config"
	"github.com/rashmitha1620/admin-sub000/internal/geo"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/pricing"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

// fakeOrders serves a fixed set of orders by ID.
type fakeOrders struct {
	orders map[types.ID]*order.Order
}

func (f *fakeOrders) Get(_ context.Context, id types.ID) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func newTestService(t *testing.T, riders []rider.Rider, vendors []vendor.Vendor) *Service {
	t.Helper()
	o := testOrder()
	return NewService(
		rider.NewMemStore(riders),
		vendor.NewMemStore(vendors),
		&fakeOrders{orders: map[types.ID]*order.Order{o.ID: o}},
		geo.Fixed(5),
		pricing.NewService(pricing.DefaultRate()),
		config.MatchingConfig{DefaultLimit: 3, RecommendLimit: 5},
	)
}

func riderPool(n int) []rider.Rider {
	out := make([]rider.Rider, 0, n)
	for i := 0; i < n; i++ {
		r := onlineRider(fmt.Sprintf("r%d", i))
		r.Rating = 5 - float64(i)*0.5
		out = append(out, r)
	}
	return out
}

// ---------------------------------------------------------------------------
// Matching
// ---------------------------------------------------------------------------

func TestFindMatchingRiders_UsesConfiguredLimit(t *testing.T) {
	svc := newTestService(t, riderPool(6), nil)

	results, err := svc.FindMatchingRiders(context.Background(), "ord_test", 0)
	if err != nil {
		t.Fatalf("FindMatchingRiders: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected configured default of 3, got %d", len(results))
	}
	if results[0].Candidate.ID != "r0" {
		t.Fatalf("expected highest-rated rider first, got %s", results[0].Candidate.ID)
	}
}

func TestFindMatchingRiders_UnknownOrder(t *testing.T) {
	svc := newTestService(t, riderPool(2), nil)
	_, err := svc.FindMatchingRiders(context.Background(), "ord_missing", 0)
	if !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected order.ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Recommendations
// ---------------------------------------------------------------------------

func TestGetRiderRecommendations_SplitsTopAndAlternatives(t *testing.T) {
	svc := newTestService(t, riderPool(8), nil)

	rec, err := svc.GetRiderRecommendations(context.Background(), "ord_test")
	if err != nil {
		t.Fatalf("GetRiderRecommendations: %v", err)
	}
	if len(rec.TopMatches) != 3 {
		t.Fatalf("top matches: got %d, want 3", len(rec.TopMatches))
	}
	if len(rec.Alternatives) != 2 {
		t.Fatalf("alternatives: got %d, want 2", len(rec.Alternatives))
	}
	// Worst top match still beats the best alternative.
	if rec.TopMatches[2].Score < rec.Alternatives[0].Score {
		t.Fatal("alternatives ranked above a top match")
	}

	a := rec.OrderAnalysis
	if a.OrderID != "ord_test" {
		t.Errorf("analysis order id: got %s", a.OrderID)
	}
	if a.DistanceKm != 5 {
		t.Errorf("analysis distance: got %.1f, want 5", a.DistanceKm)
	}
	if a.ItemCount != 3 {
		t.Errorf("analysis item count: got %d, want 3", a.ItemCount)
	}
	if a.FeeEstimate == nil {
		t.Fatal("rider analysis must carry a fee estimate")
	}
	if a.FeeEstimate.Amount != 70 { // 30 base + 5 km * 8
		t.Errorf("fee estimate: got %d, want 70", a.FeeEstimate.Amount)
	}
	if len(rec.Criteria.Primary) == 0 {
		t.Error("criteria missing")
	}
}

func TestGetRiderRecommendations_SmallPoolHasNoAlternatives(t *testing.T) {
	svc := newTestService(t, riderPool(2), nil)

	rec, err := svc.GetRiderRecommendations(context.Background(), "ord_test")
	if err != nil {
		t.Fatalf("GetRiderRecommendations: %v", err)
	}
	if len(rec.TopMatches) != 2 {
		t.Fatalf("top matches: got %d, want 2", len(rec.TopMatches))
	}
	if len(rec.Alternatives) != 0 {
		t.Fatalf("alternatives: got %d, want 0", len(rec.Alternatives))
	}
}

func TestGetVendorRecommendations_AnalysisCarriesCategories(t *testing.T) {
	vendors := []vendor.Vendor{activeVendor("v1"), activeVendor("v2")}
	svc := newTestService(t, nil, vendors)

	rec, err := svc.GetVendorRecommendations(context.Background(), "ord_test")
	if err != nil {
		t.Fatalf("GetVendorRecommendations: %v", err)
	}
	if len(rec.TopMatches) != 2 {
		t.Fatalf("top matches: got %d, want 2", len(rec.TopMatches))
	}
	got := rec.OrderAnalysis.Categories
	if len(got) != 2 || got[0] != "Groceries" || got[1] != "Dairy" {
		t.Fatalf("analysis categories: got %v", got)
	}
	if rec.OrderAnalysis.FeeEstimate != nil {
		t.Error("vendor analysis must not carry a delivery fee estimate")
	}
}

// ---------------------------------------------------------------------------
// Search and details
// ---------------------------------------------------------------------------

func TestSearchRidersForOrder_RankedBestFirst(t *testing.T) {
	svc := newTestService(t, riderPool(4), nil)

	results, err := svc.SearchRidersForOrder(context.Background(), "mumbai", "ord_test")
	if err != nil {
		t.Fatalf("SearchRidersForOrder: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected all 4 city matches, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("ranked search not sorted at index %d", i)
		}
	}
}

func TestGetRiderDetails(t *testing.T) {
	busy := onlineRider("busy")
	busy.CurrentOrders = busy.MaxOrders
	svc := newTestService(t, []rider.Rider{onlineRider("r0"), busy}, nil)

	st, err := svc.GetRiderDetails(context.Background(), "r0")
	if err != nil {
		t.Fatalf("GetRiderDetails: %v", err)
	}
	if !st.Available || st.AvailableCapacity != 3 {
		t.Fatalf("unexpected status: %+v", st)
	}

	st, err = svc.GetRiderDetails(context.Background(), "busy")
	if err != nil {
		t.Fatalf("GetRiderDetails(busy): %v", err)
	}
	if st.Available || st.AvailableCapacity != 0 {
		t.Fatalf("busy rider must report unavailable: %+v", st)
	}

	if _, err := svc.GetRiderDetails(context.Background(), "ghost"); !errors.Is(err, rider.ErrNotFound) {
		t.Fatalf("expected rider.ErrNotFound, got %v", err)
	}
}

func TestGetVendorDetails(t *testing.T) {
	svc := newTestService(t, nil, []vendor.Vendor{activeVendor("v1")})

	st, err := svc.GetVendorDetails(context.Background(), "v1")
	if err != nil {
		t.Fatalf("GetVendorDetails: %v", err)
	}
	if !st.Available || st.AvailableCapacity != 8 {
		t.Fatalf("unexpected status: %+v", st)
	}

	if _, err := svc.GetVendorDetails(context.Background(), "ghost"); !errors.Is(err, vendor.ErrNotFound) {
		t.Fatalf("expected vendor.ErrNotFound, got %v", err)
	}
}
