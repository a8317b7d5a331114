package leadsRepo

import (
	"context"

	"bookcall/models"
)

// LeadsRepository persists contact messages and newsletter subscribers.
type LeadsRepository interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
	CreateSubscriber(ctx context.Context, sub *models.Subscriber) error
	ListContactMessages(ctx context.Context, limit int64) ([]models.ContactMessage, error)
	ListSubscribers(ctx context.Context, limit int64) ([]models.Subscriber, error)
}
