package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"bookcall/models"
	"bookcall/services/availability"
)

// fixedClock pins "now" so date-boundary behaviour is deterministic.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// testNow is a Tuesday; March 2026 starts on a Sunday.
var testNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	bookingCalls  int
	reminderCalls int
	contactCalls  int
	err           error
	lastPayload   models.BookingPayload
}

func (f *fakeNotifier) SendBookingRequest(ctx context.Context, payload models.BookingPayload) error {
	f.bookingCalls++
	f.lastPayload = payload
	return f.err
}

func (f *fakeNotifier) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	f.reminderCalls++
	return f.err
}

func (f *fakeNotifier) SendContactNotification(ctx context.Context, msg models.ContactMessage) error {
	f.contactCalls++
	return f.err
}

type fakeBookings struct {
	created []*models.Booking
	err     error
}

func (f *fakeBookings) Create(ctx context.Context, booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookings) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.created {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookings) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.created {
		out = append(out, *b)
	}
	return out, nil
}

type fakeReminders struct {
	scheduled []models.Booking
	err       error
}

func (f *fakeReminders) ScheduleReminder(booking models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, booking)
	return nil
}

func newTestService(t *testing.T, src availability.Source) (*DefaultSchedulerService, *fakeNotifier, *fakeBookings, *fakeReminders) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = cache.Close() })

	if src == nil {
		src = availability.NewStatic()
	}
	notifier := &fakeNotifier{}
	bookings := &fakeBookings{}
	reminders := &fakeReminders{}

	svc := &DefaultSchedulerService{
		Cache:        cache,
		Availability: src,
		Notifier:     notifier,
		Bookings:     bookings,
		Reminders:    reminders,
		Clock:        fixedClock{t: testNow},
		Logger:       zap.NewNop(),
	}
	return svc, notifier, bookings, reminders
}
