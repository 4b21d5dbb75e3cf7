package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindease/models"
)

func newClientFor(t *testing.T, handler http.HandlerFunc) *BackendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackendClient(srv.URL, 5*time.Second)
}

func TestGetAssignedProvider(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clients/client-1/assigned-provider", r.URL.Path)
		json.NewEncoder(w).Encode(models.ProviderAssignment{
			ID:              "prov-7",
			FirstName:       "Dana",
			LastName:        "Whitfield",
			Specializations: []string{"CBT"},
		})
	})

	assignment, err := client.GetAssignedProvider(context.Background(), "client-1")
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, "prov-7", assignment.ID)
	assert.Equal(t, "Dana Whitfield", assignment.DisplayName())
}

func TestGetAssignedProviderNotFoundMeansUnassigned(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assignment, err := client.GetAssignedProvider(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Nil(t, assignment)
}

func TestGetAssignedProviderServerError(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetAssignedProvider(context.Background(), "client-1")
	assert.Error(t, err)
}

func TestGetAvailableSlots(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/providers/prov-7/slots", r.URL.Path)
		assert.Equal(t, "2024-07-01", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode(map[string]any{
			"slots": []models.TimeSlot{
				{Time: "10:00", Available: true},
				{Time: "11:00", Available: false},
			},
		})
	})

	slots, err := client.GetAvailableSlots(context.Background(), "prov-7", "2024-07-01")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.False(t, slots[1].Available)
}

func TestGetAvailableSlotsServerError(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetAvailableSlots(context.Background(), "prov-7", "2024-07-01")
	assert.Error(t, err)
}

func TestSubmitAppointmentRequest(t *testing.T) {
	var received models.AppointmentRequest
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointment-requests", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	req := models.AppointmentRequest{
		ClientID:      "client-1",
		ProviderID:    "prov-7",
		PreferredDate: "2024-07-01",
		PreferredTime: "14:00",
		Reason:        "Anxiety management",
	}
	require.NoError(t, client.SubmitAppointmentRequest(context.Background(), req))
	assert.Equal(t, req, received)
}

func TestSubmitAppointmentRequestBackendRejection(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"success": false})
	})

	err := client.SubmitAppointmentRequest(context.Background(), models.AppointmentRequest{})
	assert.Error(t, err)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	client := NewBackendClient("http://localhost:9000/", time.Second)
	assert.Equal(t, "http://localhost:9000", client.BaseURL)
}
