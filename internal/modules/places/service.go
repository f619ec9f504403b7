// README: Google Places adapter for restaurants, sights, and theaters with radius fallback.
package places

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"activabot/internal/config"
)

// Category selects the place type searched for. Values are Google Places types.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategorySight      Category = "tourist_attraction"
	CategoryTheater    Category = "movie_theater"
)

// Place is a simplified location result.
type Place struct {
	Name    string
	Address string
}

// mapsClient is the slice of the Google Maps client the service uses.
// Kept as an interface so tests can stub the upstream.
type mapsClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// Service handles interactions with the Google Places API.
type Service struct {
	client mapsClient
	cfg    config.SearchConfig
	log    *logrus.Logger
}

// NewService creates a Service with the given API key.
func NewService(apiKey string, cfg config.SearchConfig, log *logrus.Logger) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client, cfg: cfg, log: log}, nil
}

// Search geocodes the free-form location (city, state, country, or postal
// code - no validation happens here) and looks up nearby places of the given
// category. An empty first attempt is retried once at the extended radius;
// there is never a third attempt.
func (s *Service) Search(ctx context.Context, location string, cat Category) ([]Place, error) {
	geo, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil {
		s.log.WithError(err).WithField("location", location).Warn("geocode failed")
		return nil, err
	}
	if len(geo) == 0 {
		return nil, nil
	}
	at := geo[0].Geometry.Location

	results, err := s.nearby(ctx, &at, cat, s.cfg.DefaultRadiusM)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		results, err = s.nearby(ctx, &at, cat, s.cfg.ExtendedRadiusM)
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *Service) nearby(ctx context.Context, at *maps.LatLng, cat Category, radiusM int) ([]Place, error) {
	resp, err := s.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: at,
		Radius:   uint(radiusM),
		Type:     maps.PlaceType(cat),
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"category": cat,
			"radius_m": radiusM,
		}).Warn("places search failed")
		return nil, err
	}

	var results []Place
	for _, r := range resp.Results {
		if r.Name == "" {
			continue
		}
		results = append(results, Place{Name: r.Name, Address: r.Vicinity})
		if len(results) >= s.cfg.MaxResults {
			break
		}
	}
	return results, nil
}
