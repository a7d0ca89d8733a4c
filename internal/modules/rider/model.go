// README: Delivery rider candidate model.
package rider

import (
	"strings"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusBusy    Status = "busy"
)

type Rider struct {
	ID              types.ID
	Name            string
	Phone           string
	Status          Status
	City            string
	Pincode         string
	DeliveryRadius  float64 // km
	VehicleType     string
	Rating          float64 // 0..5
	ExperienceYears float64
	CurrentOrders   int
	MaxOrders       int
}

// Available reports whether the rider can take another order right now.
// "online" and "active" both count as available states; comparisons are
// case-insensitive because the upstream records are hand-entered.
func (r *Rider) Available() bool {
	return availableStatus(string(r.Status)) && r.CurrentOrders < r.MaxOrders
}

func (r *Rider) AvailableCapacity() int {
	return r.MaxOrders - r.CurrentOrders
}

func availableStatus(s string) bool {
	return strings.EqualFold(s, "online") || strings.EqualFold(s, "active")
}
