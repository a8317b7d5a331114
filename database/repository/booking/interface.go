package bookingRepo

import (
	"context"

	"bookcall/models"
)

// BookingRepository persists confirmed appointments.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
}
