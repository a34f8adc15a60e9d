package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetDeliveryDetailsQueryIsNotConstructed = errors.New(
	"GetDeliveryDetailsQuery must be created via NewGetDeliveryDetailsQuery constructor",
)

// GetDeliveryDetailsQuery retrieves one delivery run with its order lines and
// per-leg distance and ETA estimates.
type GetDeliveryDetailsQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryDetailsQuery creates a query for one delivery run.
func NewGetDeliveryDetailsQuery(deliveryID kernel.UUID) (GetDeliveryDetailsQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryDetailsQuery{}, err
	}

	return GetDeliveryDetailsQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryDetailsQueryIsNotConstructed)
}

// DeliveryID returns the run's identifier.
func (q GetDeliveryDetailsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// DeliveryLegResponse is one leg of the run (agent to pickup, or pickup to
// drop-off) with its straight-line distance and travel estimate.
type DeliveryLegResponse struct {
	From           string
	To             string
	DistanceMeters float64
	EtaMinutes     int
}

// GetDeliveryDetailsQueryResponse is the full view of one delivery run.
// Legs holds only the legs whose coordinates are known.
type GetDeliveryDetailsQueryResponse struct {
	DeliveryID            kernel.UUID
	OrderID               kernel.UUID
	AgentID               kernel.UUID
	Status                string
	PickupAddress         string
	DeliveryAddress       string
	ContactPhone          string
	ProofOfDelivery       string
	DeliveryNotes         string
	OrderTotalAmount      float64
	Items                 []OrderItemResponse
	Legs                  []DeliveryLegResponse
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
