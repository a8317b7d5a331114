package scheduler

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "bookcall/database/repository/booking"
	"bookcall/models"
	"bookcall/services/availability"
	"bookcall/services/notification"
)

// Clock abstracts "now" so date-boundary behaviour is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ReminderScheduler enqueues a reminder for a confirmed booking. Enqueue
// failures never fail the booking.
type ReminderScheduler interface {
	ScheduleReminder(booking models.Booking) error
}

// SchedulerService drives one visitor's scheduling session: calendar
// navigation, date and slot selection, the two-step details flow, and
// submission.
type SchedulerService interface {
	StartSession(ctx context.Context) (*models.SchedulingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error)
	Navigate(ctx context.Context, sessionID string, dir Direction) (*models.SchedulingSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.SchedulingSession, error)
	SelectTime(ctx context.Context, sessionID, label string) (*models.SchedulingSession, error)
	Back(ctx context.Context, sessionID string) (*models.SchedulingSession, error)
	Submit(ctx context.Context, sessionID string, contact models.ContactDetails) (*models.BookingConfirmationResponse, error)
	Reset(ctx context.Context, sessionID string) (*models.SchedulingSession, error)
}

// DefaultSchedulerService implements SchedulerService on a redis session
// cache, an availability source and a notification dispatcher.
type DefaultSchedulerService struct {
	Cache        *redis.Client
	Availability availability.Source
	Notifier     notification.NotificationService
	Bookings     bookingRepo.BookingRepository
	Reminders    ReminderScheduler // optional
	Clock        Clock
	Logger       *zap.Logger

	// MaxMonthsAhead caps forward navigation; 0 leaves it unbounded.
	MaxMonthsAhead int
	// SessionTTL defaults to 30 minutes when zero.
	SessionTTL time.Duration
}

func (s *DefaultSchedulerService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulerService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}
