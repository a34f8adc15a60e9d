// Package geo resolves street addresses to coordinates through a
// Nominatim-compatible geocoding service.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// DefaultUserAgent identifies the service to the geocoding provider.
// Nominatim's usage policy requires a meaningful User-Agent on every request.
const DefaultUserAgent = "marketplace/1.0"

// NominatimClient implements ports.Geocoder against the Nominatim search API.
// Any transport, decoding, or empty-result failure is reported as a
// DependencyUnavailableError so callers can degrade gracefully.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimClient creates a geocoder client for the given base URL,
// e.g. "https://nominatim.openstreetmap.org". An empty userAgent falls back
// to DefaultUserAgent.
func NewNominatimClient(baseURL, userAgent string) (*NominatimClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &NominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: defaultTimeout},
	}, nil
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves an address to a coordinate using the first search hit.
func (c *NominatimClient) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if address == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewDependencyUnavailableError("geocoder", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewDependencyUnavailableError("geocoder", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, errs.NewDependencyUnavailableError("geocoder",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var results []searchResult
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return kernel.GeoPoint{}, errs.NewDependencyUnavailableError("geocoder", err)
	}

	if len(results) == 0 {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("address", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewDependencyUnavailableError("geocoder", err)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewDependencyUnavailableError("geocoder", err)
	}

	return kernel.NewGeoPoint(lat, lon)
}
