package kernel

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound valid WGS84 latitudes in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound valid WGS84 longitudes in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// earthRadiusMeters is the mean Earth radius used for great-circle distance.
	earthRadiusMeters = 6371000.0
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized
// GeoPoint. Points must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a validated WGS84 coordinate
// pair. It is used for supplier pickup points, delivery destinations, and
// agent positions. The zero value is invalid; use NewGeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Returns an error if either coordinate is outside its valid range.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the point was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

// IsEqual compares two points for coordinate equality. Both points must be
// properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceTo calculates the great-circle (Haversine) distance to another point
// in meters, using a mean Earth radius of 6,371,000 m. The result is symmetric
// and zero for identical points. Both points must be properly constructed.
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRadians(other.lat - p.lat)
	dLon := toRadians(other.lon - p.lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(p.lat))*math.Cos(toRadians(other.lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// setLat sets the latitude with validation. Pointer receiver is used for the
// private setters to keep validation self-encapsulated during construction.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}
