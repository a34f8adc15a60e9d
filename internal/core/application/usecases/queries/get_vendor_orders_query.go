package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery retrieves a vendor's order history, optionally
// narrowed to a single status.
type GetVendorOrdersQuery struct {
	vendorID kernel.UUID
	status   string

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a query for a vendor's orders. status is
// optional; empty means all statuses.
func NewGetVendorOrdersQuery(vendorID kernel.UUID, status string) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}
	if status != "" {
		if _, err := order.StatusFromString(status); err != nil {
			return GetVendorOrdersQuery{}, err
		}
	}

	return GetVendorOrdersQuery{
		vendorID: vendorID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the vendor whose orders are listed.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// Status returns the optional status filter, empty meaning all.
func (q GetVendorOrdersQuery) Status() string {
	return q.status
}
