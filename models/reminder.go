package models

// ReminderPayload is the asynq task body for a booking reminder email.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	TimeLabel string `json:"timeLabel"`
}
