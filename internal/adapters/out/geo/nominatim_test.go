package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/adapters/out/geo"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimClient_Geocode_ReturnsFirstHit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "12 Market Lane", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "streetfood-test/0.1", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"19.0760","lon":"72.8777"}]`))
	}))
	defer server.Close()

	client, err := geo.NewNominatimClient(server.URL, "streetfood-test/0.1")
	require.NoError(t, err)

	point, err := client.Geocode(context.Background(), "12 Market Lane")
	require.NoError(t, err)
	assert.InDelta(t, 19.0760, point.Lat(), 1e-9)
	assert.InDelta(t, 72.8777, point.Lon(), 1e-9)
}

func TestNominatimClient_Geocode_NoResults_ReturnsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := geo.NewNominatimClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.Geocode(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNominatimClient_Geocode_ServerError_ReportsDependencyUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := geo.NewNominatimClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.Geocode(context.Background(), "12 Market Lane")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDependencyUnavailable)
}

func TestNominatimClient_Geocode_EmptyAddress_IsRejected(t *testing.T) {
	client, err := geo.NewNominatimClient("http://localhost:9", "")
	require.NoError(t, err)

	_, err = client.Geocode(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewNominatimClient_EmptyBaseURL_IsRejected(t *testing.T) {
	_, err := geo.NewNominatimClient("", "")
	require.Error(t, err)
}

func TestNominatimClient_Geocode_EmptyUserAgent_SendsDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, geo.DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[{"lat":"19.0760","lon":"72.8777"}]`))
	}))
	defer server.Close()

	client, err := geo.NewNominatimClient(server.URL, "")
	require.NoError(t, err)

	_, err = client.Geocode(context.Background(), "12 Market Lane")
	require.NoError(t, err)
}
