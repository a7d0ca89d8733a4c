// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rashmitha1620/admin-sub000/internal/ai"
	"github.com/rashmitha1620/admin-sub000/internal/config"
	"github.com/rashmitha1620/admin-sub000/internal/geo"
	httptransport "github.com/rashmitha1620/admin-sub000/internal/http"
	"github.com/rashmitha1620/admin-sub000/internal/infra"
	"github.com/rashmitha1620/admin-sub000/internal/matching"
	"github.com/rashmitha1620/admin-sub000/internal/modules/dispatch"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
	"github.com/rashmitha1620/admin-sub000/internal/modules/pricing"
	"github.com/rashmitha1620/admin-sub000/internal/modules/rider"
	"github.com/rashmitha1620/admin-sub000/internal/modules/vendor"
	"github.com/rashmitha1620/admin-sub000/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		riderStore  rider.Store
		vendorStore vendor.Store
		orderStore  order.Store
	)
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		riderStore = rider.NewPGStore(dbPool)
		vendorStore = vendor.NewPGStore(dbPool)
		orderStore = order.NewPGStore(dbPool)
	} else {
		log.Print("no ADMIN_DB_DSN set; using seeded in-memory stores")
		riderStore = rider.NewMemStore(seed.Riders())
		vendorStore = vendor.NewMemStore(seed.Vendors())
		memOrders := order.NewMemStore()
		if err := seed.IntoOrderStore(ctx, memOrders); err != nil {
			log.Fatal(err)
		}
		orderStore = memOrders
	}

	var estimator geo.Estimator = geo.NewPincodeEstimator(time.Now().UnixNano())
	if cfg.Maps.APIKey != "" {
		est, err := geo.NewMapsEstimator(cfg.Maps.APIKey, "IN", estimator)
		if err != nil {
			log.Fatalf("maps estimator: %v", err)
		}
		estimator = est
	}

	var assignLog *dispatch.Log
	if cfg.Redis.Addr != "" {
		assignLog = dispatch.NewLog(infra.NewRedis(cfg.Redis.Addr))
	}

	var insights ai.InsightProvider
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		insights = provider
	}

	orderSvc := order.NewService(orderStore)
	pricingSvc := pricing.NewService(pricing.DefaultRate())
	matchingSvc := matching.NewService(riderStore, vendorStore, orderSvc, estimator, pricingSvc, cfg.Matching)
	dispatchSvc := dispatch.NewService(
		riderStore, vendorStore, orderSvc, assignLog,
		time.Duration(cfg.Dispatch.SimulatedDelayMS)*time.Millisecond,
	)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Order:    orderSvc,
		Matching: matchingSvc,
		Dispatch: dispatchSvc,
		Insights: insights,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("admin-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
