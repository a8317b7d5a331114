package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookcall/models"
)

// Submit validates the contact details, dispatches exactly one booking
// request to the notification collaborator, and resolves the session to
// confirmed or submission_failed. While a dispatch is in flight the session
// is flagged submitting and further submits are rejected, so a double-click
// can never cause a duplicate dispatch.
func (s *DefaultSchedulerService) Submit(ctx context.Context, sessionID string, contact models.ContactDetails) (*models.BookingConfirmationResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Flow {
	case models.FlowEnteringDetails, models.FlowSubmissionFailed:
		// submittable
	case models.FlowSubmitting:
		return nil, NewSubmitInFlightError()
	default:
		return nil, NewFlowError("submission requires the details step")
	}
	if !session.HasSelection() {
		return nil, NewFlowError("no date and time selected")
	}
	if field := contact.Validate(); field != "" {
		return nil, NewValidationError(field)
	}

	// Record the details and the in-flight flag before dispatching; a retry
	// arriving mid-dispatch sees FlowSubmitting and is rejected.
	session.Contact = contact
	session.Flow = models.FlowSubmitting
	session.LastError = ""
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	payload := models.BookingPayload{
		ContactName:  strings.TrimSpace(contact.FullName),
		ContactEmail: strings.TrimSpace(contact.Email),
		ContactPhone: strings.TrimSpace(contact.Phone),
		Date:         session.SelectedDate,
		Time:         session.SelectedTime,
		Details:      contact.Description,
	}

	if dispatchErr := s.Notifier.SendBookingRequest(ctx, payload); dispatchErr != nil {
		s.Logger.Warn("booking dispatch failed",
			zap.String("sessionID", sessionID), zap.Error(dispatchErr))
		session.Flow = models.FlowSubmissionFailed
		session.LastError = "We couldn't deliver your booking. Please try again."
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			s.Logger.Error("failed to record submission failure", zap.Error(saveErr))
		}
		return nil, NewDispatchError(dispatchErr)
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		Date:      session.SelectedDate,
		TimeLabel: session.SelectedTime,
		Contact:   contact,
		CreatedAt: time.Now().UTC(),
	}

	// The visitor's booking is already on its way to the firm; persistence
	// and reminder problems are logged, not surfaced.
	if s.Bookings != nil {
		if err := s.Bookings.Create(ctx, booking); err != nil {
			s.Logger.Error("failed to persist confirmed booking",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(*booking); err != nil {
			s.Logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	session.Flow = models.FlowConfirmed
	session.ConfirmedEmail = payload.ContactEmail
	session.BookingID = booking.ID
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("booking confirmed",
		zap.String("sessionID", sessionID),
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date),
		zap.String("time", booking.TimeLabel))

	return &models.BookingConfirmationResponse{
		BookingID:    booking.ID,
		Date:         booking.Date,
		TimeLabel:    booking.TimeLabel,
		Email:        payload.ContactEmail,
		Confirmation: fmt.Sprintf("Booked for %s at %s", booking.Date, booking.TimeLabel),
	}, nil
}
