package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetSupplierProductsQueryIsNotConstructed = errors.New(
	"GetSupplierProductsQuery must be created via NewGetSupplierProductsQuery constructor",
)

// GetSupplierProductsQuery retrieves a supplier's full catalog, including
// delisted and out-of-stock entries.
type GetSupplierProductsQuery struct {
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSupplierProductsQuery creates a query for a supplier's own catalog.
func NewGetSupplierProductsQuery(supplierID kernel.UUID) (GetSupplierProductsQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierProductsQuery{}, err
	}

	return GetSupplierProductsQuery{
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierProductsQueryIsNotConstructed)
}

// SupplierID returns the supplier whose catalog is listed.
func (q GetSupplierProductsQuery) SupplierID() kernel.UUID {
	return q.supplierID
}
