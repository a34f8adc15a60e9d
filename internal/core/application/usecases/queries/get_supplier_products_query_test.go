package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSupplierProductsQuery_Valid(t *testing.T) {
	supplierID := kernel.NewUUID()

	query, err := queries.NewGetSupplierProductsQuery(supplierID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.SupplierID().IsEqual(supplierID))
}

func TestNewGetSupplierProductsQuery_InvalidSupplierID(t *testing.T) {
	_, err := queries.NewGetSupplierProductsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetSupplierProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSupplierProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSupplierProductsQueryIsNotConstructed)
}
