// README: Marketplace fixtures for the in-memory stores (development default).
package seed

import (
	"context"
	"time"

	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

func Riders() []rider.Rider {
	return []rider.Rider{
		{ID: "RID001", Name: "Ravi Kumar", Phone: "+91 98100 12345", Status: rider.StatusOnline, City: "Mumbai", Pincode: "400001", DeliveryRadius: 15, VehicleType: "Motorcycle", Rating: 4.8, ExperienceYears: 4, CurrentOrders: 2, MaxOrders: 5},
		{ID: "RID002", Name: "Amit Singh", Phone: "+91 98100 23456", Status: rider.StatusOnline, City: "Mumbai", Pincode: "400012", DeliveryRadius: 10, VehicleType: "Scooter", Rating: 4.5, ExperienceYears: 2, CurrentOrders: 1, MaxOrders: 4},
		{ID: "RID003", Name: "Priya Sharma", Phone: "+91 98100 34567", Status: rider.StatusBusy, City: "Mumbai", Pincode: "400050", DeliveryRadius: 12, VehicleType: "Bicycle", Rating: 4.9, ExperienceYears: 6, CurrentOrders: 4, MaxOrders: 4},
		{ID: "RID004", Name: "Suresh Patel", Phone: "+91 98100 45678", Status: rider.StatusOnline, City: "Pune", Pincode: "411001", DeliveryRadius: 20, VehicleType: "Motorcycle", Rating: 4.2, ExperienceYears: 8, CurrentOrders: 0, MaxOrders: 6},
		{ID: "RID005", Name: "Deepak Verma", Phone: "+91 98100 56789", Status: rider.StatusOffline, City: "Mumbai", Pincode: "400003", DeliveryRadius: 15, VehicleType: "Motorcycle", Rating: 4.6, ExperienceYears: 3, CurrentOrders: 0, MaxOrders: 5},
		{ID: "RID006", Name: "Kiran Rao", Phone: "+91 98100 67890", Status: rider.StatusOnline, City: "Delhi", Pincode: "110001", DeliveryRadius: 18, VehicleType: "Scooter", Rating: 3.9, ExperienceYears: 1, CurrentOrders: 3, MaxOrders: 5},
	}
}

func Vendors() []vendor.Vendor {
	return []vendor.Vendor{
		{ID: "VEN001", Name: "Fresh Mart Groceries", Status: vendor.StatusActive, City: "Mumbai", Pincode: "400002", ServiceRadius: 12, Categories: []string{"Groceries", "Dairy", "Snacks"}, Rating: 4.6, CompletionRate: 96, OrdersToday: 14, MaxOrdersPerDay: 40},
		{ID: "VEN002", Name: "Spice Route Kitchen", Status: vendor.StatusActive, City: "Mumbai", Pincode: "400015", ServiceRadius: 8, Categories: []string{"Food", "Beverages"}, Rating: 4.3, CompletionRate: 91, OrdersToday: 22, MaxOrdersPerDay: 30},
		{ID: "VEN003", Name: "MediQuick Pharmacy", Status: vendor.StatusActive, City: "Mumbai", Pincode: "400049", ServiceRadius: 15, Categories: []string{"Pharmacy", "Personal Care"}, Rating: 4.9, CompletionRate: 99, OrdersToday: 6, MaxOrdersPerDay: 25},
		{ID: "VEN004", Name: "Style Hub Fashion", Status: vendor.StatusInactive, City: "Pune", Pincode: "411004", ServiceRadius: 25, Categories: []string{"Clothing", "Footwear"}, Rating: 4.1, CompletionRate: 88, OrdersToday: 0, MaxOrdersPerDay: 20},
		{ID: "VEN005", Name: "Delhi Organics", Status: vendor.StatusActive, City: "Delhi", Pincode: "110003", ServiceRadius: 20, Categories: []string{"Groceries", "Organic Food"}, Rating: 4.4, CompletionRate: 93, OrdersToday: 19, MaxOrdersPerDay: 20},
	}
}

func Orders() []*order.Order {
	now := time.Now()
	return []*order.Order{
		{
			ID:           "ORD1001",
			CustomerName: "Anita Desai",
			Items: []order.Item{
				{Name: "Basmati Rice 5kg", Category: "Groceries", Quantity: 1, Price: types.Money{Amount: 520, Currency: "INR"}},
				{Name: "Paneer 500g", Category: "Dairy", Quantity: 2, Price: types.Money{Amount: 180, Currency: "INR"}},
			},
			DeliveryAddress: types.Address{Street: "14 Marine Drive", Area: "Churchgate", City: "Mumbai", State: "Maharashtra", Pincode: "400020"},
			Total:           types.Money{Amount: 880, Currency: "INR"},
			Priority:        order.PriorityNormal,
			Status:          order.StatusPending,
			CreatedAt:       now.Add(-45 * time.Minute),
		},
		{
			ID:           "ORD1002",
			CustomerName: "Rahul Mehta",
			Items: []order.Item{
				{Name: "Paracetamol 500mg", Category: "Pharmacy", Quantity: 1, Price: types.Money{Amount: 35, Currency: "INR"}},
				{Name: "Hand Sanitizer", Category: "Personal Care", Quantity: 1, Price: types.Money{Amount: 99, Currency: "INR"}},
			},
			DeliveryAddress: types.Address{Street: "7 Hill Road", Area: "Bandra West", City: "Mumbai", State: "Maharashtra", Pincode: "400050"},
			Total:           types.Money{Amount: 134, Currency: "INR"},
			Priority:        order.PriorityUrgent,
			Status:          order.StatusPending,
			CreatedAt:       now.Add(-10 * time.Minute),
		},
		{
			ID:           "ORD1003",
			CustomerName: "Sneha Iyer",
			Items: []order.Item{
				{Name: "Veg Thali", Category: "Food", Quantity: 3, Price: types.Money{Amount: 250, Currency: "INR"}},
			},
			DeliveryAddress: types.Address{Street: "221 FC Road", Area: "Shivajinagar", City: "Pune", State: "Maharashtra", Pincode: "411005"},
			Total:           types.Money{Amount: 750, Currency: "INR"},
			Priority:        order.PriorityNormal,
			Status:          order.StatusPending,
			CreatedAt:       now.Add(-2 * time.Hour),
		},
	}
}

// IntoOrderStore loads the order fixtures into a store.
func IntoOrderStore(ctx context.Context, store order.Store) error {
	for _, o := range Orders() {
		if err := store.Create(ctx, o); err != nil {
			return err
		}
	}
	return nil
}
