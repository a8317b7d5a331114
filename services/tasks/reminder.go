package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"bookcall/models"
)

const TypeSendReminder = "reminder:send"

// Appointment labels combine the calendar date with the slot label, e.g.
// "2026-03-12" + "09:30 AM".
const appointmentLayout = "2006-01-02 03:04 PM"

// ReminderLead is how far ahead of the appointment the reminder fires.
const ReminderLead = 24 * time.Hour

// NewReminderTask builds the asynq task for a booking reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks for confirmed bookings.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleReminder enqueues a reminder 24h before the appointment. Bookings
// closer than the lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(booking models.Booking) error {
	at, err := time.ParseInLocation(appointmentLayout, booking.Date+" "+booking.TimeLabel, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable appointment time %q %q: %w", booking.Date, booking.TimeLabel, err)
	}

	fireAt := at.Add(-ReminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		Email:     booking.Contact.Email,
		Name:      booking.Contact.FullName,
		Date:      booking.Date,
		TimeLabel: booking.TimeLabel,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
