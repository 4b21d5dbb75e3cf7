package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindease/handlers"
	"mindease/models"
	"mindease/routes"
	"mindease/services/workflow"
)

// stubWorkflow returns canned results; err wins over session when set.
type stubWorkflow struct {
	session *workflow.WorkflowSession
	cells   []models.CalendarCell
	err     error

	cancelled string
}

func (s *stubWorkflow) StartSession(ctx context.Context, clientID string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) GetSession(ctx context.Context, sessionID string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) Advance(ctx context.Context, sessionID string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) Back(ctx context.Context, sessionID string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) SelectDate(ctx context.Context, sessionID, date string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) SelectTime(ctx context.Context, sessionID, timeOfDay string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) SetAlternative(ctx context.Context, sessionID, date, timeOfDay string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) SetDetails(ctx context.Context, sessionID string, details workflow.DetailsInput) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) CalendarGrid(ctx context.Context, sessionID string, year int, month time.Month) ([]models.CalendarCell, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cells, nil
}

func (s *stubWorkflow) Submit(ctx context.Context, sessionID string) (*workflow.WorkflowSession, error) {
	return s.result()
}

func (s *stubWorkflow) CancelSession(ctx context.Context, sessionID string) error {
	if s.err != nil {
		return s.err
	}
	s.cancelled = sessionID
	return nil
}

func (s *stubWorkflow) result() (*workflow.WorkflowSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func newTestRouter(svc workflow.WorkflowService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterBookingRoutes(r, handlers.NewBookingHandler(svc, zap.NewNop()))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartSessionEndpoint(t *testing.T) {
	stub := &stubWorkflow{session: &workflow.WorkflowSession{
		SessionID: "sess-1",
		ClientID:  "client-1",
		Step:      workflow.StepDateTimeSelection,
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{"clientId": "client-1"})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Session workflow.WorkflowSession `json:"session"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.Session.SessionID)
	assert.Equal(t, workflow.StepDateTimeSelection, resp.Session.Step)
}

func TestStartSessionEndpointRequiresClientID(t *testing.T) {
	r := newTestRouter(&stubWorkflow{})

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorCodeToStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown session", workflow.ErrSessionNotFound, http.StatusNotFound},
		{"validation failure", workflow.NewValidationError("bad date"), http.StatusBadRequest},
		{"wrong step", workflow.NewStateError("wrong step"), http.StatusConflict},
		{"submission failure", workflow.NewSubmissionError("backend down"), http.StatusBadGateway},
		{"infrastructure failure", errors.New("redis gone"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubWorkflow{err: tt.err})

			w := doJSON(t, r, http.MethodPost, "/api/booking/session/sess-1/advance", nil)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestInfrastructureErrorStaysOpaque(t *testing.T) {
	r := newTestRouter(&stubWorkflow{err: errors.New("dial tcp: connection refused")})

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/sess-1", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestSelectDateEndpointRequiresDate(t *testing.T) {
	r := newTestRouter(&stubWorkflow{})

	w := doJSON(t, r, http.MethodPut, "/api/booking/session/sess-1/date", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarEndpoint(t *testing.T) {
	stub := &stubWorkflow{cells: []models.CalendarCell{{}, {Day: 1}, {Day: 2}}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/sess-1/calendar?year=2024&month=7", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Year  int                   `json:"year"`
		Month int                   `json:"month"`
		Cells []models.CalendarCell `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 7, resp.Month)
	assert.Len(t, resp.Cells, 3)
}

func TestCalendarEndpointRejectsBadQuery(t *testing.T) {
	r := newTestRouter(&stubWorkflow{})

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/sess-1/calendar?month=july", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelEndpoint(t *testing.T) {
	stub := &stubWorkflow{}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodDelete, "/api/booking/session/sess-9", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "sess-9", stub.cancelled)
}
