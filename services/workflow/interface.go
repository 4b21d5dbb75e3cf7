package workflow

import (
	"context"
	"time"

	"mindease/models"
)

// WorkflowService drives the client appointment-booking workflow: one
// session per booking attempt, advanced step by step with per-step gates.
type WorkflowService interface {
	StartSession(ctx context.Context, clientID string) (*WorkflowSession, error)
	GetSession(ctx context.Context, sessionID string) (*WorkflowSession, error)
	Advance(ctx context.Context, sessionID string) (*WorkflowSession, error)
	Back(ctx context.Context, sessionID string) (*WorkflowSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*WorkflowSession, error)
	SelectTime(ctx context.Context, sessionID, timeOfDay string) (*WorkflowSession, error)
	SetAlternative(ctx context.Context, sessionID, date, timeOfDay string) (*WorkflowSession, error)
	SetDetails(ctx context.Context, sessionID string, details DetailsInput) (*WorkflowSession, error)
	CalendarGrid(ctx context.Context, sessionID string, year int, month time.Month) ([]models.CalendarCell, error)
	Submit(ctx context.Context, sessionID string) (*WorkflowSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DetailsInput carries the Details step form fields.
type DetailsInput struct {
	TherapyCategory models.TherapyCategory `json:"therapyCategory"`
	Urgency         models.Urgency         `json:"urgency"`
	Reason          string                 `json:"reason"`
	AdditionalNotes string                 `json:"additionalNotes"`
}

// DefaultWorkflowService implements WorkflowService on top of a session
// store and the three backend collaborator gateways.
type DefaultWorkflowService struct {
	Providers   ProviderGateway
	Submissions SubmissionGateway
	Resolver    SlotResolver
	Sessions    SessionStore

	// Now is injectable for deterministic calendar and date validation in
	// tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultWorkflowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
