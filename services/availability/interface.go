package availability

import "context"

// Source produces the offerable time labels for a calendar date.
// Implementations must be idempotent: calling GetAvailableSlots repeatedly
// for the same date is safe and returns the same view of availability.
type Source interface {
	GetAvailableSlots(ctx context.Context, date string) ([]string, error)
}

// DefaultSlotLabels is the firm's standard consultation grid, ordered.
var DefaultSlotLabels = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "11:30 AM",
	"02:00 PM", "03:30 PM", "04:00 PM",
}
