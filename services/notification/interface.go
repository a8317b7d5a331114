package notification

import (
	"context"

	"bookcall/models"
)

// NotificationService defines the outbound message seams the scheduler and
// the reminder worker depend on. Delivery is at-most-once from the caller's
// point of view: one dispatch per call, no internal retries.
type NotificationService interface {
	SendBookingRequest(ctx context.Context, payload models.BookingPayload) error
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
	SendContactNotification(ctx context.Context, msg models.ContactMessage) error
}
