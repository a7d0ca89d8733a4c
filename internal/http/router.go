// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rashmitha1620/admin-sub000/internal/ai"
	"github.com/rashmitha1620/admin-sub000/internal/http/handlers"
	"github.com/rashmitha1620/admin-sub000/internal/http/middleware"
	"github.com/rashmitha1620/admin-sub000/internal/matching"
	"github.com/rashmitha1620/admin-sub000/internal/modules/dispatch"
	"github.com/rashmitha1620/admin-sub000/internal/modules/order"
)

type RouterDeps struct {
	Order    *order.Service
	Matching *matching.Service
	Dispatch *dispatch.Service
	Insights ai.InsightProvider
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), middleware.Metrics())

	orderHandler := handlers.NewOrderHandler(deps.Order)
	r.POST("/api/orders", orderHandler.Create)
	r.GET("/api/orders", orderHandler.List)
	r.GET("/api/orders/:id", orderHandler.Get)
	r.POST("/api/orders/:id/cancel", orderHandler.Cancel)

	matchingHandler := handlers.NewMatchingHandler(deps.Matching)
	r.GET("/api/orders/:id/riders", matchingHandler.FindRiders)
	r.GET("/api/orders/:id/riders/recommendations", matchingHandler.RiderRecommendations)
	r.GET("/api/orders/:id/vendors", matchingHandler.FindVendors)
	r.GET("/api/orders/:id/vendors/recommendations", matchingHandler.VendorRecommendations)
	r.GET("/api/riders", matchingHandler.ListRiders)
	r.GET("/api/riders/:id", matchingHandler.RiderDetails)
	r.GET("/api/vendors", matchingHandler.ListVendors)
	r.GET("/api/vendors/:id", matchingHandler.VendorDetails)

	dispatchHandler := handlers.NewDispatchHandler(deps.Dispatch)
	r.POST("/api/orders/:id/assign/rider/:riderID", dispatchHandler.AssignRider)
	r.POST("/api/orders/:id/assign/vendor/:vendorID", dispatchHandler.AssignVendor)
	r.POST("/api/orders/:id/complete", dispatchHandler.Complete)
	r.GET("/api/orders/:id/tracking", dispatchHandler.Tracking)

	insightsHandler := handlers.NewInsightsHandler(deps.Matching, deps.Insights)
	r.GET("/api/orders/:id/insights", insightsHandler.OrderInsights)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
