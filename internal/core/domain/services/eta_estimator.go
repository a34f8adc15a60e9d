package services

import (
	"math"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// DefaultAgentSpeedKmh is the assumed courier travel speed when no speed is
// configured.
const DefaultAgentSpeedKmh = 30.0

// EtaEstimator is a domain service that converts straight-line distances into
// delivery time estimates using a flat assumed travel speed.
//
// Estimates are deliberately coarse: straight-line distance at a constant
// speed, no routing. They are surfaced to agents as guidance, not promises.
type EtaEstimator struct {
	speedKmh float64
}

// NewEtaEstimator creates an estimator with the given travel speed in km/h.
// Non-positive speeds fall back to DefaultAgentSpeedKmh.
func NewEtaEstimator(speedKmh float64) EtaEstimator {
	if speedKmh <= 0 {
		speedKmh = DefaultAgentSpeedKmh
	}
	return EtaEstimator{speedKmh: speedKmh}
}

// SpeedKmh returns the assumed travel speed.
func (e EtaEstimator) SpeedKmh() float64 {
	return e.speedKmh
}

// MinutesForDistance converts a distance in meters to whole minutes of travel
// at the assumed speed, rounded to the nearest minute.
func (e EtaEstimator) MinutesForDistance(distanceMeters float64) (int, error) {
	if distanceMeters < 0 {
		return 0, errs.NewValueIsInvalidError("distanceMeters")
	}

	metersPerSecond := e.speedKmh * 1000 / 3600
	seconds := distanceMeters / metersPerSecond
	return int(math.Round(seconds / 60)), nil
}

// MinutesBetween estimates travel minutes between two coordinates.
func (e EtaEstimator) MinutesBetween(from, to kernel.GeoPoint) (int, error) {
	distance, err := from.DistanceTo(to)
	if err != nil {
		return 0, err
	}
	return e.MinutesForDistance(distance)
}

// EstimatedArrival projects an arrival timestamp for a run that starts now and
// covers the agent-to-pickup and pickup-to-drop-off legs. Legs with unknown
// coordinates are skipped; when every coordinate is missing the estimate is
// nil.
func (e EtaEstimator) EstimatedArrival(
	now time.Time,
	agent, pickup, dropoff *kernel.GeoPoint,
) (*time.Time, error) {
	totalMinutes := 0
	known := false

	if agent != nil && pickup != nil {
		minutes, err := e.MinutesBetween(*agent, *pickup)
		if err != nil {
			return nil, err
		}
		totalMinutes += minutes
		known = true
	}

	if pickup != nil && dropoff != nil {
		minutes, err := e.MinutesBetween(*pickup, *dropoff)
		if err != nil {
			return nil, err
		}
		totalMinutes += minutes
		known = true
	}

	if !known {
		return nil, nil //nolint:nilnil // no coordinates, no estimate
	}

	arrival := now.UTC().Add(time.Duration(totalMinutes) * time.Minute)
	return &arrival, nil
}
