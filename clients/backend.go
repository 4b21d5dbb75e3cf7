// Package clients implements the gateways to the practice-management
// backend that owns provider assignment, slot availability and appointment
// persistence.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mindease/models"
)

// BackendClient calls the practice-management backend over HTTP. It
// implements the workflow's ProviderGateway, AvailabilityGateway and
// SubmissionGateway contracts.
type BackendClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// GetAssignedProvider looks up the client's assigned therapist. A 404 means
// the client has none yet and is reported as (nil, nil).
func (c *BackendClient) GetAssignedProvider(ctx context.Context, clientID string) (*models.ProviderAssignment, error) {
	endpoint := fmt.Sprintf("%s/api/clients/%s/assigned-provider", c.BaseURL, url.PathEscape(clientID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assigned provider lookup failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var assignment models.ProviderAssignment
		if err := json.NewDecoder(resp.Body).Decode(&assignment); err != nil {
			return nil, fmt.Errorf("failed to decode provider assignment: %w", err)
		}
		return &assignment, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("assigned provider lookup returned status %d", resp.StatusCode)
	}
}

// GetAvailableSlots fetches the provider's slots for a date, availability
// flags already computed by the scheduling backend.
func (c *BackendClient) GetAvailableSlots(ctx context.Context, providerID, date string) ([]models.TimeSlot, error) {
	endpoint := fmt.Sprintf("%s/api/providers/%s/slots?date=%s",
		c.BaseURL, url.PathEscape(providerID), url.QueryEscape(date))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("slot lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("slot lookup returned status %d", resp.StatusCode)
	}
	var payload struct {
		Slots []models.TimeSlot `json:"slots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode slot response: %w", err)
	}
	return payload.Slots, nil
}

// SubmitAppointmentRequest posts the finished appointment request.
func (c *BackendClient) SubmitAppointmentRequest(ctx context.Context, request models.AppointmentRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal appointment request: %w", err)
	}
	endpoint := c.BaseURL + "/api/appointment-requests"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("appointment submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("appointment submission returned status %d", resp.StatusCode)
	}
	var payload struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode submission response: %w", err)
	}
	if !payload.Success {
		return fmt.Errorf("backend rejected the appointment request")
	}
	return nil
}
