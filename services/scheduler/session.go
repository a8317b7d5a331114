package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookcall/models"
)

func sessionKey(sessionID string) string {
	return "scheduler:session:" + sessionID
}

func (s *DefaultSchedulerService) loadSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	if sessionID == "" {
		return nil, NewSessionNotFoundError(sessionID)
	}
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduling session: %w", err)
	}

	var session models.SchedulingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse scheduling session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *DefaultSchedulerService) saveSession(ctx context.Context, session *models.SchedulingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal scheduling session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store scheduling session: %w", err)
	}
	return nil
}

// StartSession creates a fresh session with the cursor on the current month.
func (s *DefaultSchedulerService) StartSession(ctx context.Context) (*models.SchedulingSession, error) {
	now := s.now()
	session := &models.SchedulingSession{
		SessionID:  uuid.New().String(),
		Cursor:     models.CursorFor(now),
		SlotStatus: models.SlotsNotRequested,
		Flow:       models.FlowSelectingDateTime,
		CreatedAt:  now.UTC(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("scheduling session started", zap.String("sessionID", session.SessionID))
	return session, nil
}

// GetSession returns the current session state.
func (s *DefaultSchedulerService) GetSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// Navigate pages the calendar cursor one month. The selected date is never
// touched by navigation.
func (s *DefaultSchedulerService) Navigate(ctx context.Context, sessionID string, dir Direction) (*models.SchedulingSession, error) {
	if dir != Previous && dir != Next {
		return nil, NewValidationError("direction")
	}
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := NavigateCursor(session.Cursor, dir)
	if dir == Next && s.MaxMonthsAhead > 0 && monthsAhead(s.now(), next) > s.MaxMonthsAhead {
		return nil, NewFlowError(fmt.Sprintf("calendar cannot be paged more than %d months ahead", s.MaxMonthsAhead))
	}

	session.Cursor = next
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate picks a booking day and kicks off slot resolution for it. A new
// selection supersedes any resolution still in flight.
func (s *DefaultSchedulerService) SelectDate(ctx context.Context, sessionID, date string) (*models.SchedulingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Flow != models.FlowSelectingDateTime {
		return nil, NewFlowError("a date can only be picked while selecting date and time")
	}
	if err := checkSelectable(date, s.now()); err != nil {
		return nil, err
	}

	session.SelectedDate = date
	session.SelectedTime = ""
	session.Slots = nil
	session.SlotsFor = date
	session.SlotStatus = models.SlotsLoading
	session.ResolveSeq++

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	go s.resolveSlots(session.SessionID, date, session.ResolveSeq)
	return session, nil
}

// SelectTime picks a resolved slot and auto-advances the flow to the details
// step.
func (s *DefaultSchedulerService) SelectTime(ctx context.Context, sessionID, label string) (*models.SchedulingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Flow != models.FlowSelectingDateTime {
		return nil, NewFlowError("a time can only be picked while selecting date and time")
	}
	if session.SelectedDate == "" {
		return nil, NewSlotError("no date selected")
	}
	if session.SlotStatus != models.SlotsReady || session.SlotsFor != session.SelectedDate {
		return nil, NewSlotError("slots for the selected date are not resolved yet")
	}

	offered := false
	for _, slot := range session.Slots {
		if slot == label {
			offered = true
			break
		}
	}
	if !offered {
		return nil, NewSlotError(fmt.Sprintf("slot %q is not offered on %s", label, session.SelectedDate))
	}

	session.SelectedTime = label
	session.Flow = models.FlowEnteringDetails
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back returns from the details step to date/time selection. The selected
// date, time and slot set are kept so the visitor sees their prior choice.
func (s *DefaultSchedulerService) Back(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Flow {
	case models.FlowEnteringDetails, models.FlowSubmissionFailed:
		// allowed
	default:
		return nil, NewFlowError("nothing to go back from")
	}

	session.Flow = models.FlowSelectingDateTime
	session.LastError = ""
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Reset returns the session to its initial defaults, cursor back on the
// month containing now. The only way out of a confirmed session.
func (s *DefaultSchedulerService) Reset(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	fresh := &models.SchedulingSession{
		SessionID:  session.SessionID,
		Cursor:     models.CursorFor(now),
		SlotStatus: models.SlotsNotRequested,
		Flow:       models.FlowSelectingDateTime,
		ResolveSeq: session.ResolveSeq, // keeps any in-flight resolve stale
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.saveSession(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}
