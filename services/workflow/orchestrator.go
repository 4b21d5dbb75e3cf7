package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindease/models"
	"mindease/utils"
)

const unassignedNotice = "You don't have an assigned therapist yet. You can still request an appointment and our team will match you with one."

// StartSession creates a new booking session for the client. The provider
// assignment is looked up exactly once here; when the client already has a
// therapist the provider-selection step is skipped outright and the session
// opens on date & time selection. A failed lookup is not fatal — unassigned
// clients are routed through manual matching later, so the session simply
// starts on the provider-selection step with an explanatory notice.
func (s *DefaultWorkflowService) StartSession(ctx context.Context, clientID string) (*WorkflowSession, error) {
	if clientID == "" {
		return nil, NewValidationError("clientId is required")
	}
	logger := utils.GetLogger()

	session := &WorkflowSession{
		SessionID: uuid.New().String(),
		ClientID:  clientID,
		Step:      StepProviderSelection,
		Draft:     models.NewBookingDraft(),
		CreatedAt: s.now(),
	}

	assigned, err := s.Providers.GetAssignedProvider(ctx, clientID)
	switch {
	case err != nil:
		logger.Warn("provider lookup failed, continuing unassigned",
			zap.String("clientID", clientID), zap.Error(err))
		session.ProviderNotice = unassignedNotice
	case assigned == nil:
		session.ProviderNotice = unassignedNotice
	default:
		session.Provider = assigned
		session.Draft.ProviderID = assigned.ID
		session.Draft.ProviderName = assigned.DisplayName()
		session.Step = StepDateTimeSelection
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	logger.Info("booking session started",
		zap.String("sessionID", session.SessionID),
		zap.String("step", string(session.Step)))
	return session, nil
}

// GetSession returns a snapshot of the session for rendering.
func (s *DefaultWorkflowService) GetSession(ctx context.Context, sessionID string) (*WorkflowSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// Advance moves the session forward one step if the current step's gate
// passes. A gate failure leaves the session untouched so the client stays on
// the current step and can retry.
func (s *DefaultWorkflowService) Advance(ctx context.Context, sessionID string) (*WorkflowSession, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := advanceGate(session.Step, session.Draft); err != nil {
		return nil, err
	}
	next, ok := nextStep(session.Step)
	if !ok {
		return nil, NewStateError("no further step to advance to")
	}
	session.Step = next
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step backward. It is never gated and never clears fields
// already entered; the draft survives any amount of back-and-forth.
func (s *DefaultWorkflowService) Back(ctx context.Context, sessionID string) (*WorkflowSession, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prev, ok := prevStep(session.Step)
	if !ok {
		return nil, NewStateError("already at the first step")
	}
	session.Step = prev
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate commits the new preferred date and then resolves slots for it.
// The date is committed before resolution begins; when resolution finishes
// the result is kept only if the session still points at the date it was
// issued for. A slower resolution for a superseded date is discarded instead
// of clobbering the newer selection — correlation by date, no cancellation.
func (s *DefaultWorkflowService) SelectDate(ctx context.Context, sessionID, date string) (*WorkflowSession, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepDateTimeSelection {
		return nil, NewStateError("date selection is only available on the date & time step")
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if date < dateOnly(s.now()) {
		return nil, NewValidationError("the preferred date cannot be in the past")
	}

	session.Draft.PreferredDate = date
	session.Slots = nil
	session.SlotsDate = date
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	slots := s.Resolver.Resolve(ctx, session.Draft.ProviderID, date)

	// Re-read before committing: another selection may have landed while the
	// resolver was in flight.
	fresh, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if fresh.Draft.PreferredDate != date {
		utils.GetLogger().Debug("discarding stale slot resolution",
			zap.String("sessionID", sessionID),
			zap.String("resolvedFor", date),
			zap.String("currentDate", fresh.Draft.PreferredDate))
		return fresh, nil
	}
	fresh.Slots = slots
	fresh.SlotsDate = date
	if err := s.Sessions.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// SelectTime records the preferred time of day. A time can only be chosen
// once a date is set, and a slot the scheduling backend marked unavailable
// is rejected outright.
func (s *DefaultWorkflowService) SelectTime(ctx context.Context, sessionID, timeOfDay string) (*WorkflowSession, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepDateTimeSelection {
		return nil, NewStateError("time selection is only available on the date & time step")
	}
	if session.Draft.PreferredDate == "" {
		return nil, NewValidationError("select a preferred date before choosing a time")
	}
	if err := validateTimeOfDay(timeOfDay); err != nil {
		return nil, err
	}
	if session.SlotsDate == session.Draft.PreferredDate {
		for _, slot := range session.Slots {
			if slot.Time == timeOfDay && !slot.Available {
				return nil, NewValidationError("that time is no longer available, please pick another slot")
			}
		}
	}
	session.Draft.PreferredTime = timeOfDay
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetAlternative records an optional second-choice date and time. The
// alternative date must be today or later.
func (s *DefaultWorkflowService) SetAlternative(ctx context.Context, sessionID, date, timeOfDay string) (*WorkflowSession, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepDateTimeSelection {
		return nil, NewStateError("the alternative slot is set on the date & time step")
	}
	if date == "" && timeOfDay != "" {
		return nil, NewValidationError("an alternative time requires an alternative date")
	}
	if date != "" {
		if err := validateDate(date); err != nil {
			return nil, err
		}
		if date < dateOnly(s.now()) {
			return nil, NewValidationError("the alternative date must be today or later")
		}
	}
	if timeOfDay != "" {
		if err := validateTimeOfDay(timeOfDay); err != nil {
			return nil, err
		}
	}
	session.Draft.AlternativeDate = date
	session.Draft.AlternativeTime = timeOfDay
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDetails records the Details step form. The reason requirement is
// enforced by the forward gate, not here, so partial edits are allowed.
func (s *DefaultWorkflowService) SetDetails(ctx context.Context, sessionID string, details DetailsInput) (*WorkflowSession, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepDetails {
		return nil, NewStateError("appointment details are set on the details step")
	}
	if details.TherapyCategory != "" {
		if !details.TherapyCategory.Valid() {
			return nil, NewValidationError("unknown therapy category")
		}
		session.Draft.TherapyCategory = details.TherapyCategory
	}
	if details.Urgency != "" {
		if !details.Urgency.Valid() {
			return nil, NewValidationError("unknown urgency level")
		}
		session.Draft.Urgency = details.Urgency
	}
	session.Draft.Reason = details.Reason
	session.Draft.AdditionalNotes = details.AdditionalNotes
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CalendarGrid builds the month grid for the session's current selections.
// Month navigation never touches the session; "today" always comes from the
// real clock, not the viewed month.
func (s *DefaultWorkflowService) CalendarGrid(ctx context.Context, sessionID string, year int, month time.Month) ([]models.CalendarCell, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, NewValidationError("month must be between 1 and 12")
	}
	sel := models.CalendarSelection{
		Preferred:   session.Draft.PreferredDate,
		Alternative: session.Draft.AlternativeDate,
	}
	return BuildCalendarGrid(year, month, s.now(), sel), nil
}

// Submit flattens the draft and hands it to the submission gateway. On
// failure the session stays on Confirmation with the draft intact so the
// client can retry without re-entering anything; on success the session
// becomes terminal and every further mutation is rejected.
func (s *DefaultWorkflowService) Submit(ctx context.Context, sessionID string) (*WorkflowSession, error) {
	session, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepConfirmation {
		return nil, NewStateError("the booking can only be submitted from the confirmation step")
	}
	req, err := buildAppointmentRequest(session)
	if err != nil {
		utils.GetLogger().Error("draft failed submission mapping despite gates",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}
	if err := s.Submissions.SubmitAppointmentRequest(ctx, req); err != nil {
		utils.GetLogger().Warn("appointment submission failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, NewSubmissionError("the appointment request could not be submitted, please try again")
	}

	session.Step = StepSuccess
	session.Completed = true
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("appointment request submitted",
		zap.String("sessionID", sessionID),
		zap.String("preferredDate", req.PreferredDate),
		zap.String("preferredTime", req.PreferredTime))
	return session, nil
}

// CancelSession discards the session and its draft; abandoning the workflow
// never persists a partial request.
func (s *DefaultWorkflowService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// loadMutable fetches a session and rejects mutation once it is complete;
// the draft is frozen after a successful submission.
func (s *DefaultWorkflowService) loadMutable(ctx context.Context, sessionID string) (*WorkflowSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed || session.Step == StepSuccess {
		return nil, NewStateError("the booking workflow is already complete")
	}
	return session, nil
}
