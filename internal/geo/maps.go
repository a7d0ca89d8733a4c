// README: Google Maps backed estimator for production deployments.
package geo

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"
)

// MapsEstimator resolves real road distances through the Distance
// Matrix API, treating pincodes as geocodable addresses. On any API
// failure it falls back to the supplied estimator so scoring never
// blocks on Google availability.
type MapsEstimator struct {
	client   *maps.Client
	region   string
	fallback Estimator
}

func NewMapsEstimator(apiKey, region string, fallback Estimator) (*MapsEstimator, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsEstimator{client: client, region: region, fallback: fallback}, nil
}

func (e *MapsEstimator) DistanceKm(from, to string) float64 {
	resp, err := e.client.DistanceMatrix(context.Background(), &maps.DistanceMatrixRequest{
		Origins:      []string{from},
		Destinations: []string{to},
		Mode:         maps.TravelModeDriving,
	})
	if err != nil {
		log.Printf("maps distance matrix: %v (falling back)", err)
		return e.fallback.DistanceKm(from, to)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 || resp.Rows[0].Elements[0].Status != "OK" {
		return e.fallback.DistanceKm(from, to)
	}
	return float64(resp.Rows[0].Elements[0].Distance.Meters) / 1000.0
}
