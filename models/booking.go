package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ContactDetails are the fields collected in the details step. All four are
// required before submission.
type ContactDetails struct {
	FullName    string `bson:"fullName" json:"fullName"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	Description string `bson:"description" json:"description"`
}

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate returns the name of the first missing or malformed field, or ""
// when the details are submittable.
func (c ContactDetails) Validate() string {
	if strings.TrimSpace(c.FullName) == "" {
		return "fullName"
	}
	if strings.TrimSpace(c.Email) == "" || !emailShape.MatchString(strings.TrimSpace(c.Email)) {
		return "email"
	}
	if strings.TrimSpace(c.Phone) == "" {
		return "phone"
	}
	if strings.TrimSpace(c.Description) == "" {
		return "description"
	}
	return ""
}

// Booking is a confirmed appointment.
type Booking struct {
	ID        string         `bson:"id" json:"id"`
	Date      string         `bson:"date" json:"date"` // DateLayout
	TimeLabel string         `bson:"timeLabel" json:"timeLabel"`
	Contact   ContactDetails `bson:"contact" json:"contact"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// BookingConfirmationResponse is returned after a booking is confirmed.
type BookingConfirmationResponse struct {
	BookingID    string `json:"bookingId"`
	Date         string `json:"date"`
	TimeLabel    string `json:"timeLabel"`
	Email        string `json:"email"`
	Confirmation string `json:"confirmation"`
}

// BookingPayload is the message handed to the notification dispatcher.
type BookingPayload struct {
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Details      string `json:"details"`
}

// Summary renders the payload as a plain-text email body.
func (p BookingPayload) Summary() string {
	return fmt.Sprintf(
		"New consultation booking\n\nName: %s\nEmail: %s\nPhone: %s\nDate: %s\nTime: %s\n\nChallenge:\n%s\n",
		p.ContactName, p.ContactEmail, p.ContactPhone, p.Date, p.Time, p.Details,
	)
}
