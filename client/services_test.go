package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/client"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

func TestSearchServicesCarriesExactlySetFilters(t *testing.T) {
	var gotQuery url.Values
	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/services/search", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(client.ServiceList{Services: []models.Service{{ID: "s1", Name: "Deep Clean"}}})
	}))

	results, err := api.SearchServices(context.Background(), models.ServiceSearchFilter{
		Category: "deep",
		MinPrice: 500,
		HasMin:   true,
	})
	require.NoError(t, err)
	require.Len(t, results.Services, 1)

	assert.Equal(t, "deep", gotQuery.Get("category"))
	assert.Equal(t, "500", gotQuery.Get("min_price"))
	// Unset filters stay off the wire.
	assert.Len(t, gotQuery, 2)
}

func TestSearchServicesNoFilters(t *testing.T) {
	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(client.ServiceList{})
	}))

	_, err := api.SearchServices(context.Background(), models.ServiceSearchFilter{})
	require.NoError(t, err)
}

func TestUpdateServiceSendsOnlyChangedFields(t *testing.T) {
	var raw map[string]json.RawMessage
	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/services/s1", r.URL.Path)
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(models.Service{ID: "s1", IsActive: false})
	}))

	inactive := false
	_, err := api.UpdateService(context.Background(), "s1", models.UpdateServiceInput{IsActive: &inactive})
	require.NoError(t, err)

	assert.Contains(t, raw, "is_active")
	assert.Len(t, raw, 1)
}

func TestBookingStatusTransitionEcho(t *testing.T) {
	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings/b1/status", r.URL.Path)
		require.Equal(t, http.MethodPatch, r.Method)
		var input models.UpdateBookingStatusInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		json.NewEncoder(w).Encode(models.Booking{ID: "b1", Status: input.Status})
	}))

	updated, err := api.UpdateBookingStatus(context.Background(), "b1", models.UpdateBookingStatusInput{Status: models.BookingConfirmed})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
}
