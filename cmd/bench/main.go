// README: Micro-benchmark for the rider matching engine over synthetic candidate pools.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rashmitha1620/admin-sub000/internal/geo"
	"github.com/rashmitha1620/admin-sub000/internal/matching"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/types"
)

func main() {
	pool := flag.Int("pool", 1000, "number of synthetic riders")
	iters := flag.Int("iters", 100, "FindMatching iterations")
	limit := flag.Int("limit", 3, "match limit")
	flag.Parse()

	riders := syntheticRiders(*pool)
	o := syntheticOrder()
	engine := matching.NewEngine(matching.RiderProfile(), geo.NewPincodeEstimator(42))

	start := time.Now()
	for i := 0; i < *iters; i++ {
		engine.FindMatching(riders, o, *limit)
	}
	elapsed := time.Since(start)

	fmt.Printf("pool=%d iters=%d limit=%d\n", *pool, *iters, *limit)
	fmt.Printf("total=%s per-call=%s\n", elapsed, elapsed/time.Duration(*iters))
}

func syntheticRiders(n int) []rider.Rider {
	vehicles := []string{"Motorcycle", "Scooter", "Bicycle"}
	out := make([]rider.Rider, n)
	for i := range out {
		out[i] = rider.Rider{
			ID:              types.ID(fmt.Sprintf("rider_%d", i)),
			Name:            fmt.Sprintf("Rider %d", i),
			Status:          rider.StatusOnline,
			Pincode:         fmt.Sprintf("4000%02d", i%100),
			DeliveryRadius:  float64(5 + i%20),
			VehicleType:     vehicles[i%len(vehicles)],
			Rating:          3.0 + float64(i%20)/10,
			ExperienceYears: float64(i % 10),
			CurrentOrders:   i % 4,
			MaxOrders:       5,
		}
	}
	return out
}

func syntheticOrder() *order.Order {
	return &order.Order{
		ID: "bench_order",
		Items: []order.Item{
			{Name: "Item", Category: "Groceries", Quantity: 2, Price: types.Money{Amount: 100, Currency: "INR"}},
		},
		DeliveryAddress: types.Address{City: "Mumbai", Pincode: "400020"},
		Total:           types.Money{Amount: 200, Currency: "INR"},
		Priority:        order.PriorityNormal,
		Status:          order.StatusPending,
	}
}
