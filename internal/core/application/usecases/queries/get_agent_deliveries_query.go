package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAgentDeliveriesQueryIsNotConstructed = errors.New(
	"GetAgentDeliveriesQuery must be created via NewGetAgentDeliveriesQuery constructor",
)

// GetAgentDeliveriesQuery retrieves an agent's delivery runs, optionally
// narrowed to a single status.
type GetAgentDeliveriesQuery struct {
	agentID kernel.UUID
	status  string

	guard guard.ConstructorGuard
}

// NewGetAgentDeliveriesQuery creates a query for an agent's runs. status is
// optional; empty means all statuses.
func NewGetAgentDeliveriesQuery(agentID kernel.UUID, status string) (GetAgentDeliveriesQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentDeliveriesQuery{}, err
	}
	if status != "" {
		if _, err := delivery.StatusFromString(status); err != nil {
			return GetAgentDeliveriesQuery{}, err
		}
	}

	return GetAgentDeliveriesQuery{
		agentID: agentID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentDeliveriesQueryIsNotConstructed)
}

// AgentID returns the agent whose runs are listed.
func (q GetAgentDeliveriesQuery) AgentID() kernel.UUID {
	return q.agentID
}

// Status returns the optional status filter, empty meaning all.
func (q GetAgentDeliveriesQuery) Status() string {
	return q.status
}

// GetAgentDeliveriesQueryResponse is one delivery run in an agent's listing,
// joined with the order it carries.
type GetAgentDeliveriesQueryResponse struct {
	DeliveryID            kernel.UUID
	OrderID               kernel.UUID
	Status                string
	PickupAddress         string
	DeliveryAddress       string
	ContactPhone          string
	OrderTotalAmount      float64
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
}
