// README: Rider factor table and profile for the scoring engine.
package matching

import (
	"math"
	"strings"

	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
)

// Rider factor weights; they sum to 100.
const (
	riderAvailabilityWeight = 30
	riderLocationWeight     = 25
	riderRatingWeight       = 20
	riderExperienceWeight   = 10
	riderCapacityWeight     = 10
	riderVehicleWeight      = 5
)

// vehicleDistanceThresholdKm is where vehicle choice starts to matter:
// above it motorcycles are preferred, below it every vehicle does the
// job about equally well.
const vehicleDistanceThresholdKm = 10.0

func RiderProfile() Profile[rider.Rider] {
	return Profile[rider.Rider]{
		Kind:         "rider",
		Rankable:     func(r rider.Rider) bool { return r.Available() },
		Pincode:      func(r rider.Rider) string { return r.Pincode },
		Origin:       func(o *order.Order) string { return o.OriginPincode() },
		SearchFields: func(r rider.Rider) []string { return []string{r.Name, r.City, r.VehicleType} },
		Load:         func(r rider.Rider) int { return r.CurrentOrders },
		Capacity:     func(r rider.Rider) int { return r.MaxOrders },
		Factors: []Factor[rider.Rider]{
			{
				Name:   "availability",
				Weight: riderAvailabilityWeight,
				Score: func(r rider.Rider, _ *order.Order, _ float64) float64 {
					if r.Available() {
						return 1
					}
					return 0
				},
			},
			{
				Name:   "location",
				Weight: riderLocationWeight,
				Score: func(r rider.Rider, _ *order.Order, d float64) float64 {
					return radiusDecay(d, r.DeliveryRadius)
				},
			},
			{
				Name:   "rating",
				Weight: riderRatingWeight,
				Score: func(r rider.Rider, _ *order.Order, _ float64) float64 {
					return r.Rating / 5
				},
			},
			{
				Name:   "experience",
				Weight: riderExperienceWeight,
				Score: func(r rider.Rider, _ *order.Order, _ float64) float64 {
					// 2 points per year, capped at the full weight.
					return math.Min(r.ExperienceYears*2, riderExperienceWeight) / riderExperienceWeight
				},
			},
			{
				Name:   "capacity",
				Weight: riderCapacityWeight,
				Score: func(r rider.Rider, _ *order.Order, _ float64) float64 {
					return idleCapacity(r.CurrentOrders, r.MaxOrders)
				},
			},
			{
				Name:   "vehicle_type",
				Weight: riderVehicleWeight,
				Score: func(r rider.Rider, _ *order.Order, d float64) float64 {
					return vehicleSuitability(r.VehicleType, d)
				},
			},
		},
	}
}

// radiusDecay drops linearly from 1 at the candidate's doorstep to 0 at
// the edge of its service radius.
func radiusDecay(distanceKm, radiusKm float64) float64 {
	if radiusKm <= 0 {
		return 0
	}
	return 1 - distanceKm/radiusKm
}

func idleCapacity(load, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return 1 - float64(load)/float64(capacity)
}

func vehicleSuitability(vehicleType string, distanceKm float64) float64 {
	if distanceKm <= vehicleDistanceThresholdKm {
		return 0.8
	}
	switch strings.ToLower(vehicleType) {
	case "motorcycle":
		return 1.0
	case "scooter":
		return 0.7
	default:
		return 0.4
	}
}
