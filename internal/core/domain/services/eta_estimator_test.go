package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEtaEstimator(t *testing.T) {
	assert.Equal(t, 25.0, services.NewEtaEstimator(25).SpeedKmh())
	assert.Equal(t, services.DefaultAgentSpeedKmh, services.NewEtaEstimator(0).SpeedKmh())
	assert.Equal(t, services.DefaultAgentSpeedKmh, services.NewEtaEstimator(-5).SpeedKmh())
}

func TestEtaEstimator_MinutesForDistance(t *testing.T) {
	estimator := services.NewEtaEstimator(30)

	t.Run("15km at 30km/h is 30 minutes", func(t *testing.T) {
		minutes, err := estimator.MinutesForDistance(15000)
		require.NoError(t, err)
		assert.Equal(t, 30, minutes)
	})

	t.Run("zero distance is zero minutes", func(t *testing.T) {
		minutes, err := estimator.MinutesForDistance(0)
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("rounds to the nearest minute", func(t *testing.T) {
		// 1250m at 30km/h = 2.5min, rounds to 3
		minutes, err := estimator.MinutesForDistance(1250)
		require.NoError(t, err)
		assert.Equal(t, 3, minutes)
	})

	t.Run("rejects negative distance", func(t *testing.T) {
		_, err := estimator.MinutesForDistance(-1)
		require.Error(t, err)
	})
}

func TestEtaEstimator_MinutesBetween(t *testing.T) {
	estimator := services.NewEtaEstimator(30)

	mumbai, err := kernel.NewGeoPoint(19.0760, 72.8777)
	require.NoError(t, err)
	pune, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)

	minutes, err := estimator.MinutesBetween(mumbai, pune)
	require.NoError(t, err)
	// ~120km straight line at 30km/h is roughly four hours
	assert.InDelta(t, 240, minutes, 15)
}

func TestEtaEstimator_EstimatedArrival(t *testing.T) {
	estimator := services.NewEtaEstimator(30)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	agent, err := kernel.NewGeoPoint(19.0760, 72.8777)
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(19.0896, 72.8656)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(19.1136, 72.8697)
	require.NoError(t, err)

	t.Run("sums both legs", func(t *testing.T) {
		arrival, err := estimator.EstimatedArrival(now, &agent, &pickup, &dropoff)

		require.NoError(t, err)
		require.NotNil(t, arrival)
		assert.True(t, arrival.After(now))
	})

	t.Run("skips legs with unknown coordinates", func(t *testing.T) {
		arrival, err := estimator.EstimatedArrival(now, nil, &pickup, &dropoff)

		require.NoError(t, err)
		require.NotNil(t, arrival)

		full, err := estimator.EstimatedArrival(now, &agent, &pickup, &dropoff)
		require.NoError(t, err)
		assert.False(t, arrival.After(*full))
	})

	t.Run("nil when no coordinates are known", func(t *testing.T) {
		arrival, err := estimator.EstimatedArrival(now, nil, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, arrival)
	})
}
