package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetSupplierOrdersQueryIsNotConstructed = errors.New(
	"GetSupplierOrdersQuery must be created via NewGetSupplierOrdersQuery constructor",
)

// GetSupplierOrdersQuery retrieves the orders placed with a supplier,
// optionally narrowed to a single status. Suppliers use it as a work queue
// for confirming and preparing orders.
type GetSupplierOrdersQuery struct {
	supplierID kernel.UUID
	status     string

	guard guard.ConstructorGuard
}

// NewGetSupplierOrdersQuery creates a query for a supplier's incoming orders.
// status is optional; empty means all statuses.
func NewGetSupplierOrdersQuery(supplierID kernel.UUID, status string) (GetSupplierOrdersQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierOrdersQuery{}, err
	}
	if status != "" {
		if _, err := order.StatusFromString(status); err != nil {
			return GetSupplierOrdersQuery{}, err
		}
	}

	return GetSupplierOrdersQuery{
		supplierID: supplierID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierOrdersQueryIsNotConstructed)
}

// SupplierID returns the supplier whose incoming orders are listed.
func (q GetSupplierOrdersQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// Status returns the optional status filter, empty meaning all.
func (q GetSupplierOrdersQuery) Status() string {
	return q.status
}
