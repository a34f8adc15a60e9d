package queries

import (
	"database/sql"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailableDeliveriesHandler() GetAvailableDeliveriesQueryHandler {
	return NewGetAvailableDeliveriesQueryHandler(nil, services.NewEtaEstimator(30))
}

func agentAt(t *testing.T, lat, lng float64) *kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return &point
}

func coord(value float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: value, Valid: true}
}

func TestAvailableDeliveries_ListedNewestFirst(t *testing.T) {
	assert.Contains(t, availableDeliveriesSQL, "ORDER BY o.created_at DESC")
}

func TestAnnotateProximity_NoAgentLocation_IncludesEverything(t *testing.T) {
	handler := newAvailableDeliveriesHandler()
	query, err := NewGetAvailableDeliveriesQuery(nil, 0)
	require.NoError(t, err)

	var resp GetAvailableDeliveriesQueryResponse
	include, err := handler.annotateProximity(&resp, query, sql.NullFloat64{}, sql.NullFloat64{})
	require.NoError(t, err)
	assert.True(t, include)
	assert.Nil(t, resp.DistanceMeters)
	assert.Nil(t, resp.EtaMinutes)
}

func TestAnnotateProximity_FilteredFeedExcludesUngeocodedPickup(t *testing.T) {
	handler := newAvailableDeliveriesHandler()
	query, err := NewGetAvailableDeliveriesQuery(agentAt(t, 19.0760, 72.8777), 5000)
	require.NoError(t, err)

	var resp GetAvailableDeliveriesQueryResponse
	include, err := handler.annotateProximity(&resp, query, sql.NullFloat64{}, sql.NullFloat64{})
	require.NoError(t, err)
	assert.False(t, include)
}

func TestAnnotateProximity_WithinRadius_IncludedWithDistanceAndEta(t *testing.T) {
	handler := newAvailableDeliveriesHandler()
	query, err := NewGetAvailableDeliveriesQuery(agentAt(t, 19.0760, 72.8777), 5000)
	require.NoError(t, err)

	var resp GetAvailableDeliveriesQueryResponse
	include, err := handler.annotateProximity(&resp, query, coord(19.0800), coord(72.8800))
	require.NoError(t, err)
	assert.True(t, include)
	require.NotNil(t, resp.DistanceMeters)
	require.NotNil(t, resp.EtaMinutes)
	assert.Greater(t, *resp.DistanceMeters, 0.0)
	assert.Less(t, *resp.DistanceMeters, 5000.0)
}

func TestAnnotateProximity_BeyondRadius_Excluded(t *testing.T) {
	handler := newAvailableDeliveriesHandler()
	query, err := NewGetAvailableDeliveriesQuery(agentAt(t, 19.0760, 72.8777), 5000)
	require.NoError(t, err)

	// Delhi pickup, Mumbai agent.
	var resp GetAvailableDeliveriesQueryResponse
	include, err := handler.annotateProximity(&resp, query, coord(28.6139), coord(77.2090))
	require.NoError(t, err)
	assert.False(t, include)
}

func TestAnnotateProximity_UnboundedRadius_StillAnnotates(t *testing.T) {
	handler := newAvailableDeliveriesHandler()
	query, err := NewGetAvailableDeliveriesQuery(agentAt(t, 19.0760, 72.8777), 0)
	require.NoError(t, err)

	var resp GetAvailableDeliveriesQueryResponse
	include, err := handler.annotateProximity(&resp, query, coord(28.6139), coord(77.2090))
	require.NoError(t, err)
	assert.True(t, include)
	require.NotNil(t, resp.DistanceMeters)
	assert.Greater(t, *resp.DistanceMeters, 1_000_000.0)
}
