// README: Marketplace order aggregate and status definitions.
package order

import (
	"strings"
	"time"

	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type Status string

const (
	StatusNone      Status = "none"
	StatusPending   Status = "pending"
	StatusAssigned  Status = "assigned"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

type Item struct {
	Name     string
	Category string
	Quantity int
	Price    types.Money
}

// PartnerDetails is stamped onto the order when a rider is assigned.
type PartnerDetails struct {
	Name        string
	Phone       string
	VehicleType string
	TrackingID  string
	AssignedAt  time.Time
}

// VendorDetails is stamped onto the order when a vendor is assigned.
// Pincode doubles as the rider pickup origin.
type VendorDetails struct {
	Name       string
	Pincode    string
	AssignedAt time.Time
}

type Order struct {
	ID              types.ID
	CustomerName    string
	Items           []Item
	DeliveryAddress types.Address
	Total           types.Money
	Priority        Priority
	Status          Status
	RiderID         *types.ID
	VendorID        *types.ID
	DeliveryPartner *PartnerDetails
	VendorDetails   *VendorDetails
	CreatedAt       time.Time
}

type Event struct {
	ID         int64
	OrderID    types.ID
	FromStatus Status
	ToStatus   Status
	ActorType  string
	ActorID    *types.ID
	CreatedAt  time.Time
}

// OriginPincode is where a rider picks the order up: the assigned
// vendor's pincode when known, otherwise the delivery pincode (the
// order was placed without a pickup location).
func (o *Order) OriginPincode() string {
	if o.VendorDetails != nil && o.VendorDetails.Pincode != "" {
		return o.VendorDetails.Pincode
	}
	return o.DeliveryAddress.Pincode
}

// Categories returns the distinct item categories, preserving first
// appearance order.
func (o *Order) Categories() []string {
	seen := make(map[string]bool, len(o.Items))
	var out []string
	for _, it := range o.Items {
		key := strings.ToLower(it.Category)
		if it.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it.Category)
	}
	return out
}

// ItemCount is the total quantity across line items.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
