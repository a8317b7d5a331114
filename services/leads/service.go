package leads

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	leadsRepo "bookcall/database/repository/leads"
	"bookcall/models"
	"bookcall/services/notification"
)

// LeadsService captures contact messages and newsletter signups from the
// marketing site.
type LeadsService interface {
	SubmitContactMessage(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
	Subscribe(ctx context.Context, email, source string) (*models.Subscriber, error)
}

// DefaultLeadsService implements LeadsService.
type DefaultLeadsService struct {
	Repo     leadsRepo.LeadsRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SubmitContactMessage stores the lead and forwards it to the firm inbox.
// Forwarding is best-effort; the lead is kept even when email fails.
func (s *DefaultLeadsService) SubmitContactMessage(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !emailShape.MatchString(msg.Email) {
		return nil, fmt.Errorf("a valid email is required")
	}
	if msg.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	if err := s.Repo.CreateContactMessage(ctx, &msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if err := s.Notifier.SendContactNotification(ctx, msg); err != nil {
		s.Logger.Warn("failed to forward contact message",
			zap.String("id", msg.ID), zap.Error(err))
	}

	return &msg, nil
}

// Subscribe records a newsletter signup. Subscribing twice with the same
// email is a no-op.
func (s *DefaultLeadsService) Subscribe(ctx context.Context, email, source string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailShape.MatchString(email) {
		return nil, fmt.Errorf("a valid email is required")
	}

	sub := models.Subscriber{Email: email, Source: source}
	if err := s.Repo.CreateSubscriber(ctx, &sub); err != nil {
		return nil, fmt.Errorf("failed to store subscriber: %w", err)
	}

	s.Logger.Info("newsletter signup", zap.String("email", email), zap.String("source", source))
	return &sub, nil
}
