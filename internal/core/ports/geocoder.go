package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-form street address to a coordinate.
// Implementations call an external geocoding provider; failures are reported
// as DependencyUnavailableError so callers can degrade gracefully.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}
