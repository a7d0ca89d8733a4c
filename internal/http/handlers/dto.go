// README: JSON response shapes for the dashboard API.
package handlers

import (
	"github.com/rashmitha1620/admin-sub000/internal/matching"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

type moneyResp struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func toMoney(m types.Money) moneyResp {
	return moneyResp{Amount: m.Amount, Currency: m.Currency}
}

type riderResp struct {
	ID              types.ID `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Status          string   `json:"status"`
	City            string   `json:"city"`
	Pincode         string   `json:"pincode"`
	DeliveryRadius  float64  `json:"delivery_radius_km"`
	VehicleType     string   `json:"vehicle_type"`
	Rating          float64  `json:"rating"`
	ExperienceYears float64  `json:"experience_years"`
	CurrentOrders   int      `json:"current_orders"`
	MaxOrders       int      `json:"max_orders"`
}

func toRider(r rider.Rider) riderResp {
	return riderResp{
		ID: r.ID, Name: r.Name, Phone: r.Phone, Status: string(r.Status),
		City: r.City, Pincode: r.Pincode, DeliveryRadius: r.DeliveryRadius,
		VehicleType: r.VehicleType, Rating: r.Rating, ExperienceYears: r.ExperienceYears,
		CurrentOrders: r.CurrentOrders, MaxOrders: r.MaxOrders,
	}
}

type vendorResp struct {
	ID              types.ID `json:"id"`
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	City            string   `json:"city"`
	Pincode         string   `json:"pincode"`
	ServiceRadius   float64  `json:"service_radius_km"`
	Categories      []string `json:"categories"`
	Rating          float64  `json:"rating"`
	CompletionRate  float64  `json:"completion_rate"`
	OrdersToday     int      `json:"orders_today"`
	MaxOrdersPerDay int      `json:"max_orders_per_day"`
}

func toVendor(v vendor.Vendor) vendorResp {
	return vendorResp{
		ID: v.ID, Name: v.Name, Status: string(v.Status),
		City: v.City, Pincode: v.Pincode, ServiceRadius: v.ServiceRadius,
		Categories: v.Categories, Rating: v.Rating, CompletionRate: v.CompletionRate,
		OrdersToday: v.OrdersToday, MaxOrdersPerDay: v.MaxOrdersPerDay,
	}
}

type factorResp struct {
	Factor string  `json:"factor"`
	Weight float64 `json:"weight"`
	Points float64 `json:"points"`
}

func toBreakdown(bd []matching.FactorScore) []factorResp {
	out := make([]factorResp, len(bd))
	for i, f := range bd {
		out[i] = factorResp{Factor: f.Name, Weight: f.Weight, Points: f.Points}
	}
	return out
}

type riderMatchResp struct {
	Rider             riderResp    `json:"rider"`
	Score             float64      `json:"score"`
	Breakdown         []factorResp `json:"breakdown"`
	DistanceKm        float64      `json:"distance_km"`
	EstimatedMinutes  int          `json:"estimated_minutes"`
	AvailableCapacity int          `json:"available_capacity"`
}

func toRiderMatches(results []matching.Result[rider.Rider]) []riderMatchResp {
	out := make([]riderMatchResp, len(results))
	for i, r := range results {
		out[i] = riderMatchResp{
			Rider:             toRider(r.Candidate),
			Score:             r.Score,
			Breakdown:         toBreakdown(r.Breakdown),
			DistanceKm:        r.DistanceKm,
			EstimatedMinutes:  r.EstimatedMinutes,
			AvailableCapacity: r.AvailableCapacity,
		}
	}
	return out
}

type vendorMatchResp struct {
	Vendor            vendorResp   `json:"vendor"`
	Score             float64      `json:"score"`
	Breakdown         []factorResp `json:"breakdown"`
	DistanceKm        float64      `json:"distance_km"`
	EstimatedMinutes  int          `json:"estimated_minutes"`
	AvailableCapacity int          `json:"available_capacity"`
}

func toVendorMatches(results []matching.Result[vendor.Vendor]) []vendorMatchResp {
	out := make([]vendorMatchResp, len(results))
	for i, r := range results {
		out[i] = vendorMatchResp{
			Vendor:            toVendor(r.Candidate),
			Score:             r.Score,
			Breakdown:         toBreakdown(r.Breakdown),
			DistanceKm:        r.DistanceKm,
			EstimatedMinutes:  r.EstimatedMinutes,
			AvailableCapacity: r.AvailableCapacity,
		}
	}
	return out
}

type orderAnalysisResp struct {
	OrderID         types.ID       `json:"order_id"`
	Categories      []string       `json:"categories,omitempty"`
	PickupPincode   string         `json:"pickup_pincode,omitempty"`
	DeliveryPincode string         `json:"delivery_pincode,omitempty"`
	DistanceKm      float64        `json:"distance_km,omitempty"`
	ItemCount       int            `json:"item_count"`
	OrderValue      moneyResp      `json:"order_value"`
	Priority        order.Priority `json:"priority"`
	FeeEstimate     *moneyResp     `json:"fee_estimate,omitempty"`
}

func toAnalysis(a matching.OrderAnalysis) orderAnalysisResp {
	resp := orderAnalysisResp{
		OrderID:         a.OrderID,
		Categories:      a.Categories,
		PickupPincode:   a.PickupPincode,
		DeliveryPincode: a.DeliveryPincode,
		DistanceKm:      a.DistanceKm,
		ItemCount:       a.ItemCount,
		OrderValue:      toMoney(a.OrderValue),
		Priority:        a.Priority,
	}
	if a.FeeEstimate != nil {
		fee := toMoney(*a.FeeEstimate)
		resp.FeeEstimate = &fee
	}
	return resp
}

type criteriaResp struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

type orderItemResp struct {
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	Price    moneyResp `json:"price"`
}

type orderResp struct {
	ID              types.ID              `json:"id"`
	CustomerName    string                `json:"customer_name"`
	Items           []orderItemResp       `json:"items"`
	Street          string                `json:"street"`
	Area            string                `json:"area"`
	City            string                `json:"city"`
	State           string                `json:"state"`
	Pincode         string                `json:"pincode"`
	Total           moneyResp             `json:"total"`
	Priority        order.Priority        `json:"priority"`
	Status          order.Status          `json:"status"`
	RiderID         *types.ID             `json:"rider_id,omitempty"`
	VendorID        *types.ID             `json:"vendor_id,omitempty"`
	DeliveryPartner *order.PartnerDetails `json:"delivery_partner,omitempty"`
	VendorDetails   *order.VendorDetails  `json:"vendor_details,omitempty"`
}

func toOrder(o *order.Order) orderResp {
	items := make([]orderItemResp, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemResp{Name: it.Name, Category: it.Category, Quantity: it.Quantity, Price: toMoney(it.Price)}
	}
	return orderResp{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		Items:           items,
		Street:          o.DeliveryAddress.Street,
		Area:            o.DeliveryAddress.Area,
		City:            o.DeliveryAddress.City,
		State:           o.DeliveryAddress.State,
		Pincode:         o.DeliveryAddress.Pincode,
		Total:           toMoney(o.Total),
		Priority:        o.Priority,
		Status:          o.Status,
		RiderID:         o.RiderID,
		VendorID:        o.VendorID,
		DeliveryPartner: o.DeliveryPartner,
		VendorDetails:   o.VendorDetails,
	}
}
