package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableDeliveriesQuery_WithoutLocation(t *testing.T) {
	query, err := queries.NewGetAvailableDeliveriesQuery(nil, 0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.AgentLocation())
	assert.Zero(t, query.RadiusMeters())
}

func TestNewGetAvailableDeliveriesQuery_WithLocationAndRadius(t *testing.T) {
	location, err := kernel.NewGeoPoint(19.0760, 72.8777)
	require.NoError(t, err)

	query, err := queries.NewGetAvailableDeliveriesQuery(&location, 5000)
	require.NoError(t, err)
	require.NotNil(t, query.AgentLocation())
	assert.InDelta(t, 5000, query.RadiusMeters(), 1e-9)
}

func TestNewGetAvailableDeliveriesQuery_NegativeRadius(t *testing.T) {
	_, err := queries.NewGetAvailableDeliveriesQuery(nil, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetAvailableDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableDeliveriesQueryIsNotConstructed)
}
