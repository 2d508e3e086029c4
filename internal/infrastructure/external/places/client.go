package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/middlegroundapp/middleground/internal/domain/entities"
	"github.com/middlegroundapp/middleground/pkg/config"
	"github.com/middlegroundapp/middleground/pkg/geo"
)

// resultLimit caps the number of venues requested per search.
const resultLimit = 15

// Client wraps the external places search. Implementations degrade to an
// empty venue list on any upstream failure; callers never see an error from
// a bad upstream response.
type Client interface {
	Search(ctx context.Context, midpoint geo.Point, query string, radiusMeters int) []entities.Venue
}

// foursquareClient is the real Foursquare Places implementation
type foursquareClient struct {
	baseURL    string
	apiKey     string
	apiVersion string
	client     *http.Client
	logger     *zap.Logger
}

// NewClient creates a places client backed by the Foursquare search API
func NewClient(cfg *config.PlacesConfig, logger *zap.Logger) Client {
	return &foursquareClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		client:     &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// searchResponse mirrors the subset of the Foursquare response we consume.
// Coordinates appear both at the top level and under geocodes.main depending
// on the API version; normalization prefers geocodes.main when present.
type searchResponse struct {
	Results []struct {
		FsqID    string  `json:"fsq_id"`
		Name     string  `json:"name"`
		Distance int     `json:"distance"`
		Latitude float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Website  string  `json:"website"`
		Tel      string  `json:"tel"`
		Location struct {
			Address          string `json:"address"`
			Locality         string `json:"locality"`
			Region           string `json:"region"`
			Country          string `json:"country"`
			FormattedAddress string `json:"formatted_address"`
		} `json:"location"`
		Geocodes struct {
			Main struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"main"`
		} `json:"geocodes"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	} `json:"results"`
}

// Search queries Foursquare for venues near the midpoint. Transport errors
// are retried briefly with exponential backoff; any terminal failure is
// logged and yields an empty list.
func (c *foursquareClient) Search(ctx context.Context, midpoint geo.Point, query string, radiusMeters int) []entities.Venue {
	if c.apiKey == "" {
		c.logger.Warn("places.search.skipped", zap.String("reason", "no api key configured"))
		return nil
	}
	if radiusMeters <= 0 {
		radiusMeters = 3000
	}

	params := url.Values{}
	params.Set("ll", fmt.Sprintf("%f,%f", midpoint.Lat, midpoint.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(resultLimit))
	params.Set("fields", "fsq_id,name,categories,location,geocodes,distance,website,tel")
	endpoint := c.baseURL + "/places/search?" + params.Encode()

	var data searchResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Places-Api-Version", c.apiVersion)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("places search returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			// Client-side rejections will not improve on retry
			return backoff.Permanent(fmt.Errorf("places search returned status %d", resp.StatusCode))
		}
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode places response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(200*time.Millisecond),
		backoff.WithMaxElapsedTime(5*time.Second),
	), 2), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		c.logger.Warn("places.search.failed", zap.Error(err))
		return nil
	}

	venues := make([]entities.Venue, 0, len(data.Results))
	for _, r := range data.Results {
		lat, lng := r.Geocodes.Main.Latitude, r.Geocodes.Main.Longitude
		if lat == 0 && lng == 0 {
			lat, lng = r.Latitude, r.Longitude
		}
		categories := make([]string, 0, len(r.Categories))
		for _, cat := range r.Categories {
			categories = append(categories, cat.Name)
		}
		venues = append(venues, entities.Venue{
			ID:   r.FsqID,
			Name: r.Name,
			Location: entities.VenueLocation{
				Address:          r.Location.Address,
				Locality:         r.Location.Locality,
				Region:           r.Location.Region,
				Country:          r.Location.Country,
				FormattedAddress: r.Location.FormattedAddress,
				Lat:              lat,
				Lng:              lng,
			},
			Categories:     categories,
			DistanceMeters: r.Distance,
			Website:        r.Website,
			Tel:            r.Tel,
		})
	}
	return venues
}
