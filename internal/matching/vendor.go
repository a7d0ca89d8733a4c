// README: Vendor factor table and profile for the scoring engine.
package matching

import (
	"strings"

	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
)

// Vendor factor weights; they sum to 100. Category fit dominates
// because sending an order to a vendor that doesn't stock it is worse
// than any distance penalty.
const (
	vendorCategoryWeight     = 40
	vendorLocationWeight     = 25
	vendorAvailabilityWeight = 15
	vendorRatingWeight       = 10
	vendorCompletionWeight   = 5
	vendorCapacityWeight     = 5
)

func VendorProfile() Profile[vendor.Vendor] {
	return Profile[vendor.Vendor]{
		Kind:     "vendor",
		Rankable: func(v vendor.Vendor) bool { return v.Available() },
		Pincode:  func(v vendor.Vendor) string { return v.Pincode },
		Origin:   func(o *order.Order) string { return o.DeliveryAddress.Pincode },
		SearchFields: func(v vendor.Vendor) []string {
			return append([]string{v.Name, v.City}, v.Categories...)
		},
		Load:     func(v vendor.Vendor) int { return v.OrdersToday },
		Capacity: func(v vendor.Vendor) int { return v.MaxOrdersPerDay },
		Factors: []Factor[vendor.Vendor]{
			{
				Name:   "category_match",
				Weight: vendorCategoryWeight,
				Score: func(v vendor.Vendor, o *order.Order, _ float64) float64 {
					return categoryMatch(o.Categories(), v.Categories)
				},
			},
			{
				Name:   "location",
				Weight: vendorLocationWeight,
				Score: func(v vendor.Vendor, _ *order.Order, d float64) float64 {
					return radiusDecay(d, v.ServiceRadius)
				},
			},
			{
				Name:   "availability",
				Weight: vendorAvailabilityWeight,
				Score: func(v vendor.Vendor, _ *order.Order, _ float64) float64 {
					if v.Available() && v.UnderCapacity() {
						return 1
					}
					return 0
				},
			},
			{
				Name:   "rating",
				Weight: vendorRatingWeight,
				Score: func(v vendor.Vendor, _ *order.Order, _ float64) float64 {
					return v.Rating / 5
				},
			},
			{
				Name:   "completion_rate",
				Weight: vendorCompletionWeight,
				Score: func(v vendor.Vendor, _ *order.Order, _ float64) float64 {
					return v.CompletionRate / 100
				},
			},
			{
				Name:   "capacity",
				Weight: vendorCapacityWeight,
				Score: func(v vendor.Vendor, _ *order.Order, _ float64) float64 {
					return idleCapacity(v.OrdersToday, v.MaxOrdersPerDay)
				},
			},
		},
	}
}

// categoryMatch is the fraction of the order's distinct categories the
// vendor covers. Matching is a bidirectional case-insensitive substring
// test, so "Grocery" matches a vendor listing "Groceries" and
// vice versa.
func categoryMatch(orderCategories, vendorCategories []string) float64 {
	if len(orderCategories) == 0 {
		return 0
	}
	matched := 0
	for _, oc := range orderCategories {
		lc := strings.ToLower(oc)
		for _, vc := range vendorCategories {
			lv := strings.ToLower(vc)
			if strings.Contains(lv, lc) || strings.Contains(lc, lv) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(orderCategories))
}
