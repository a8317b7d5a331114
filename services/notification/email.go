package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"bookcall/models"
)

// EmailConfig holds the SendGrid settings for outbound mail.
type EmailConfig struct {
	APIKey       string
	BookingInbox string // firm inbox receiving booking and contact notifications
	FromEmail    string
	FromName     string
}

// EmailNotificationService dispatches transactional email via SendGrid.
type EmailNotificationService struct {
	client *sendgrid.Client
	cfg    EmailConfig
	logger *zap.Logger
}

// NewEmailNotificationService returns nil when no API key is configured so
// callers can fall back to the stub.
func NewEmailNotificationService(cfg EmailConfig, logger *zap.Logger) *EmailNotificationService {
	if cfg.APIKey == "" {
		return nil
	}
	return &EmailNotificationService{
		client: sendgrid.NewSendClient(cfg.APIKey),
		cfg:    cfg,
		logger: logger,
	}
}

// SendBookingRequest emails the firm inbox about a new consultation booking.
func (s *EmailNotificationService) SendBookingRequest(ctx context.Context, payload models.BookingPayload) error {
	subject := fmt.Sprintf("New booking: %s at %s", payload.Date, payload.Time)
	return s.send(ctx, s.cfg.BookingInbox, "", subject, payload.Summary())
}

// SendBookingReminder emails the contact ahead of their appointment.
func (s *EmailNotificationService) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	subject := fmt.Sprintf("Reminder: your consultation on %s at %s", payload.Date, payload.TimeLabel)
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder for your consultation on %s at %s.\n\nSee you then!\n",
		payload.Name, payload.Date, payload.TimeLabel,
	)
	return s.send(ctx, payload.Email, payload.Name, subject, body)
}

// SendContactNotification forwards a contact-form lead to the firm inbox.
func (s *EmailNotificationService) SendContactNotification(ctx context.Context, msg models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s\n", msg.Name, msg.Email, msg.Message)
	return s.send(ctx, s.cfg.BookingInbox, "", subject, body)
}

func (s *EmailNotificationService) send(ctx context.Context, to, toName, subject, body string) error {
	if s.client == nil {
		return fmt.Errorf("notification: sendgrid client not configured")
	}
	if to == "" {
		return fmt.Errorf("notification: no recipient configured")
	}

	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed", zap.Error(err), zap.String("to", to))
		return fmt.Errorf("notification: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status",
			zap.Int("status", response.StatusCode), zap.String("to", to))
		return fmt.Errorf("notification: sendgrid returned status %d", response.StatusCode)
	}

	s.logger.Info("email dispatched", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// StubNotificationService logs instead of sending. Used when no SendGrid key
// is configured and in tests.
type StubNotificationService struct {
	Logger *zap.Logger
}

func (s *StubNotificationService) SendBookingRequest(ctx context.Context, payload models.BookingPayload) error {
	s.Logger.Info("stub notifier: would send booking request",
		zap.String("date", payload.Date), zap.String("time", payload.Time))
	return nil
}

func (s *StubNotificationService) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	s.Logger.Info("stub notifier: would send booking reminder",
		zap.String("bookingId", payload.BookingID))
	return nil
}

func (s *StubNotificationService) SendContactNotification(ctx context.Context, msg models.ContactMessage) error {
	s.Logger.Info("stub notifier: would send contact notification",
		zap.String("email", msg.Email))
	return nil
}
