package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bookcall/models"
)

// resolveSlots asks the availability source for the date's slots and commits
// the outcome. Runs in its own goroutine so date selection never blocks on
// the collaborator.
func (s *DefaultSchedulerService) resolveSlots(sessionID, date string, seq int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	labels, err := s.Availability.GetAvailableSlots(ctx, date)
	s.commitSlots(ctx, sessionID, date, seq, labels, err)
}

// commitSlots applies a resolution outcome under last-selection-wins: the
// result is discarded unless the session still points at the same date and
// resolve sequence it was requested for. A failed resolve commits the
// "failed" status so the caller never sees an indefinite loading state.
func (s *DefaultSchedulerService) commitSlots(ctx context.Context, sessionID, date string, seq int, labels []string, resolveErr error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		s.Logger.Debug("slot resolution arrived for a vanished session",
			zap.String("sessionID", sessionID), zap.String("date", date))
		return
	}

	if session.ResolveSeq != seq || session.SelectedDate != date {
		s.Logger.Debug("discarding stale slot resolution",
			zap.String("sessionID", sessionID),
			zap.String("resolvedFor", date),
			zap.String("currentSelection", session.SelectedDate))
		return
	}

	if resolveErr != nil {
		s.Logger.Warn("slot resolution failed",
			zap.String("sessionID", sessionID), zap.String("date", date), zap.Error(resolveErr))
		session.Slots = nil
		session.SlotStatus = models.SlotsFailed
	} else {
		if labels == nil {
			labels = []string{}
		}
		session.Slots = labels
		session.SlotStatus = models.SlotsReady
	}
	session.SlotsFor = date

	if err := s.saveSession(ctx, session); err != nil {
		s.Logger.Error("failed to commit resolved slots",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
