// README: End-to-end handler tests over the seeded in-memory stores.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rashmitha1620/admin-sub000/internal/config"
	"github.com/rashmitha1620/admin-sub000/internal/geo"
	"github.com/rashmitha1620/admin-sub000/internal/matching"
	"github.com/rashmitha1620/admin-sub000/internal/modules/dispatch"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/pricing"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
	"github.com/rashmitha1620/admin-sub000/internal/seed"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	riders := rider.NewMemStore(seed.Riders())
	vendors := vendor.NewMemStore(seed.Vendors())
	orderStore := order.NewMemStore()
	if err := seed.IntoOrderStore(context.Background(), orderStore); err != nil {
		t.Fatalf("seed orders: %v", err)
	}
	orderSvc := order.NewService(orderStore)

	matchingSvc := matching.NewService(
		riders, vendors, orderSvc,
		geo.NewPincodeEstimator(1),
		pricing.NewService(pricing.DefaultRate()),
		config.MatchingConfig{DefaultLimit: 3, RecommendLimit: 5},
	)
	dispatchSvc := dispatch.NewService(riders, vendors, orderSvc, nil, 0)

	return NewRouter(RouterDeps{
		Order:    orderSvc,
		Matching: matchingSvc,
		Dispatch: dispatchSvc,
		Insights: nil,
	})
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode %s %s response: %v\n%s", method, path, err, w.Body.String())
		}
	}
	return w.Code, payload
}

// ---------------------------------------------------------------------------
// Health
// ---------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	code, _ := doRequest(t, r, http.MethodGet, "/health", "")
	if code != http.StatusOK {
		t.Fatalf("health: %d", code)
	}
}

// ---------------------------------------------------------------------------
// Matching endpoints
// ---------------------------------------------------------------------------

func TestFindRidersEndpoint(t *testing.T) {
	r := newTestRouter(t)

	code, body := doRequest(t, r, http.MethodGet, "/api/orders/ORD1001/riders", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	matches, ok := body["matches"].([]any)
	if !ok {
		t.Fatalf("missing matches: %v", body)
	}
	if len(matches) == 0 || len(matches) > 3 {
		t.Fatalf("match count: %d", len(matches))
	}
	// Sorted best-first.
	prev := 101.0
	for i, m := range matches {
		score := m.(map[string]any)["score"].(float64)
		if score > prev {
			t.Fatalf("matches not sorted at index %d", i)
		}
		prev = score
	}
	// Unavailable riders never appear.
	for _, m := range matches {
		rr := m.(map[string]any)["rider"].(map[string]any)
		if id := rr["id"].(string); id == "RID003" || id == "RID005" {
			t.Fatalf("unavailable rider %s matched", id)
		}
	}
}

func TestFindRidersEndpoint_LimitParam(t *testing.T) {
	r := newTestRouter(t)
	code, body := doRequest(t, r, http.MethodGet, "/api/orders/ORD1001/riders?limit=1", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if matches := body["matches"].([]any); len(matches) != 1 {
		t.Fatalf("limit ignored: %d matches", len(matches))
	}
}

func TestFindRidersEndpoint_UnknownOrder(t *testing.T) {
	r := newTestRouter(t)
	code, _ := doRequest(t, r, http.MethodGet, "/api/orders/ORD9999/riders", "")
	if code != http.StatusNotFound {
		t.Fatalf("status: %d, want 404", code)
	}
}

func TestRiderRecommendationsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	code, body := doRequest(t, r, http.MethodGet, "/api/orders/ORD1001/riders/recommendations", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	for _, key := range []string{"top_matches", "alternative_options", "order_analysis", "matching_criteria"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	analysis := body["order_analysis"].(map[string]any)
	if analysis["order_id"] != "ORD1001" {
		t.Errorf("analysis order id: %v", analysis["order_id"])
	}
	if _, ok := analysis["fee_estimate"]; !ok {
		t.Error("rider analysis missing fee estimate")
	}
}

func TestVendorRecommendationsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	code, body := doRequest(t, r, http.MethodGet, "/api/orders/ORD1001/vendors/recommendations", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	analysis := body["order_analysis"].(map[string]any)
	cats, ok := analysis["categories"].([]any)
	if !ok || len(cats) != 2 {
		t.Fatalf("analysis categories: %v", analysis["categories"])
	}
	// The grocery order must rank the grocery vendor above the pharmacy.
	top := body["top_matches"].([]any)
	if len(top) == 0 {
		t.Fatal("no top matches")
	}
	best := top[0].(map[string]any)["vendor"].(map[string]any)
	if best["id"] != "VEN001" {
		t.Errorf("best vendor: %v, want VEN001", best["id"])
	}
}

func TestListRidersEndpoint_Search(t *testing.T) {
	r := newTestRouter(t)

	code, body := doRequest(t, r, http.MethodGet, "/api/riders?search=ravi", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	riders := body["riders"].([]any)
	if len(riders) != 1 {
		t.Fatalf("search hits: %d, want 1", len(riders))
	}

	code, body = doRequest(t, r, http.MethodGet, "/api/riders?search=zzz-nomatch", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if riders := body["riders"].([]any); len(riders) != 0 {
		t.Fatalf("expected empty result, got %d", len(riders))
	}
}

func TestListRidersEndpoint_SearchForOrder(t *testing.T) {
	r := newTestRouter(t)
	code, body := doRequest(t, r, http.MethodGet, "/api/riders?search=mumbai&order_id=ORD1001", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	matches, ok := body["matches"].([]any)
	if !ok || len(matches) == 0 {
		t.Fatalf("expected scored matches, got %v", body)
	}
	if _, ok := matches[0].(map[string]any)["score"]; !ok {
		t.Fatal("scored search result missing score")
	}
}

func TestRiderDetailsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	code, body := doRequest(t, r, http.MethodGet, "/api/riders/RID001", "")
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if body["available"] != true {
		t.Errorf("RID001 availability: %v", body["available"])
	}
	if body["available_capacity"].(float64) != 3 {
		t.Errorf("RID001 capacity: %v", body["available_capacity"])
	}

	code, _ = doRequest(t, r, http.MethodGet, "/api/riders/RID999", "")
	if code != http.StatusNotFound {
		t.Fatalf("unknown rider: %d, want 404", code)
	}
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

func TestCreateOrderEndpoint(t *testing.T) {
	r := newTestRouter(t)

	body := `{
		"id": "ORD2001",
		"customer_name": "Test Customer",
		"items": [{"name": "Bread", "category": "Bakery", "quantity": 1, "price": 45}],
		"city": "Mumbai",
		"pincode": "400020",
		"total": 45
	}`
	code, resp := doRequest(t, r, http.MethodPost, "/api/orders", body)
	if code != http.StatusCreated {
		t.Fatalf("status: %d, resp %v", code, resp)
	}
	if resp["order_id"] != "ORD2001" {
		t.Errorf("order id: %v", resp["order_id"])
	}

	// Same ID again conflicts.
	code, _ = doRequest(t, r, http.MethodPost, "/api/orders", body)
	if code != http.StatusConflict {
		t.Fatalf("duplicate: %d, want 409", code)
	}

	// Missing pincode is rejected.
	code, _ = doRequest(t, r, http.MethodPost, "/api/orders",
		`{"id": "ORD2002", "items": [{"name": "Bread", "quantity": 1, "price": 45}]}`)
	if code != http.StatusBadRequest {
		t.Fatalf("invalid create: %d, want 400", code)
	}
}

func TestCancelOrderEndpoint(t *testing.T) {
	r := newTestRouter(t)

	code, _ := doRequest(t, r, http.MethodPost, "/api/orders/ORD1003/cancel", "")
	if code != http.StatusOK {
		t.Fatalf("cancel: %d", code)
	}
	code, _ = doRequest(t, r, http.MethodPost, "/api/orders/ORD1003/cancel", "")
	if code != http.StatusConflict {
		t.Fatalf("double cancel: %d, want 409", code)
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestAssignRiderEndpoint(t *testing.T) {
	r := newTestRouter(t)

	code, body := doRequest(t, r, http.MethodPost, "/api/orders/ORD1001/assign/rider/RID001", "")
	if code != http.StatusOK {
		t.Fatalf("assign: %d, %v", code, body)
	}
	tracking, _ := body["tracking_id"].(string)
	if !strings.HasPrefix(tracking, "TRK-") {
		t.Errorf("tracking id: %q", tracking)
	}
	if body["estimated_arrival"] != "15-20 minutes" {
		t.Errorf("arrival estimate: %v", body["estimated_arrival"])
	}

	// Second rider on the same order is rejected.
	code, _ = doRequest(t, r, http.MethodPost, "/api/orders/ORD1001/assign/rider/RID002", "")
	if code != http.StatusConflict {
		t.Fatalf("second rider: %d, want 409", code)
	}

	// The tracking endpoint reflects the assignment.
	code, track := doRequest(t, r, http.MethodGet, "/api/orders/ORD1001/tracking", "")
	if code != http.StatusOK {
		t.Fatalf("tracking: %d", code)
	}
	if track["tracking_id"] != tracking {
		t.Errorf("tracking id mismatch: %v vs %v", track["tracking_id"], tracking)
	}
}

func TestTrackingEndpoint_UnassignedOrder(t *testing.T) {
	r := newTestRouter(t)
	code, _ := doRequest(t, r, http.MethodGet, "/api/orders/ORD1001/tracking", "")
	if code != http.StatusConflict {
		t.Fatalf("unassigned tracking: %d, want 409", code)
	}
}

func TestAssignRiderEndpoint_Failures(t *testing.T) {
	r := newTestRouter(t)

	// RID003 is at capacity.
	code, _ := doRequest(t, r, http.MethodPost, "/api/orders/ORD1001/assign/rider/RID003", "")
	if code != http.StatusConflict {
		t.Fatalf("full rider: %d, want 409", code)
	}
	code, _ = doRequest(t, r, http.MethodPost, "/api/orders/ORD1001/assign/rider/RID999", "")
	if code != http.StatusNotFound {
		t.Fatalf("unknown rider: %d, want 404", code)
	}
	code, _ = doRequest(t, r, http.MethodPost, "/api/orders/ORD9999/assign/rider/RID001", "")
	if code != http.StatusNotFound {
		t.Fatalf("unknown order: %d, want 404", code)
	}
}

func TestCompleteEndpoint(t *testing.T) {
	r := newTestRouter(t)

	if code, _ := doRequest(t, r, http.MethodPost, "/api/orders/ORD1002/assign/vendor/VEN003", ""); code != http.StatusOK {
		t.Fatalf("vendor assign: %d", code)
	}
	if code, _ := doRequest(t, r, http.MethodPost, "/api/orders/ORD1002/assign/rider/RID002", ""); code != http.StatusOK {
		t.Fatalf("rider assign: %d", code)
	}
	code, body := doRequest(t, r, http.MethodPost, "/api/orders/ORD1002/complete", "")
	if code != http.StatusOK {
		t.Fatalf("complete: %d, %v", code, body)
	}
	if body["status"] != "delivered" {
		t.Errorf("status: %v", body["status"])
	}

	// Capacity came back.
	code, details := doRequest(t, r, http.MethodGet, "/api/riders/RID002", "")
	if code != http.StatusOK {
		t.Fatalf("details: %d", code)
	}
	if details["available_capacity"].(float64) != 3 {
		t.Errorf("capacity after completion: %v", details["available_capacity"])
	}
}

// ---------------------------------------------------------------------------
// Insights
// ---------------------------------------------------------------------------

func TestInsightsEndpoint_DisabledWithoutProvider(t *testing.T) {
	r := newTestRouter(t)
	code, _ := doRequest(t, r, http.MethodGet, "/api/orders/ORD1001/insights", "")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("insights without provider: %d, want 503", code)
	}
}
