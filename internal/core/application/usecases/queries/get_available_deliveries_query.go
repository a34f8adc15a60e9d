// Package queries contains read-only operations over the marketplace store.
// Query handlers bypass the domain aggregates and read projection rows
// directly with raw SQL, following the read side of the CQRS split.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery retrieves orders that are ready for pickup and
// not yet claimed by any agent. When the agent reports a coordinate the
// results carry distance and ETA and can be narrowed to a radius.
type GetAvailableDeliveriesQuery struct {
	agentLocation *kernel.GeoPoint
	radiusMeters  float64

	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates a query for claimable orders.
// agentLocation is optional; radiusMeters only applies when a location is
// given, and zero means unbounded.
func NewGetAvailableDeliveriesQuery(agentLocation *kernel.GeoPoint, radiusMeters float64) (GetAvailableDeliveriesQuery, error) {
	if agentLocation != nil {
		if err := agentLocation.Validate(); err != nil {
			return GetAvailableDeliveriesQuery{}, err
		}
	}
	if radiusMeters < 0 {
		return GetAvailableDeliveriesQuery{}, errs.NewValueIsInvalidError("radiusMeters")
	}

	return GetAvailableDeliveriesQuery{
		agentLocation: agentLocation,
		radiusMeters:  radiusMeters,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

// AgentLocation returns the agent's reported coordinate, or nil.
func (q GetAvailableDeliveriesQuery) AgentLocation() *kernel.GeoPoint {
	return q.agentLocation
}

// RadiusMeters returns the proximity radius, zero meaning unbounded.
func (q GetAvailableDeliveriesQuery) RadiusMeters() float64 {
	return q.radiusMeters
}

// GetAvailableDeliveriesQueryResponse is one claimable order. DistanceMeters
// and EtaMinutes are nil when the agent did not report a coordinate or the
// order's pickup point has not been geocoded.
type GetAvailableDeliveriesQueryResponse struct {
	OrderID         kernel.UUID
	SupplierID      kernel.UUID
	PickupAddress   string
	DeliveryAddress string
	TotalAmount     float64
	ItemCount       int
	DistanceMeters  *float64
	EtaMinutes      *int
}
