package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookcall/models"
)

type fakeLeadsRepo struct {
	contacts    []*models.ContactMessage
	subscribers []*models.Subscriber
	err         error
}

func (f *fakeLeadsRepo) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	msg.ID = "cm-1"
	f.contacts = append(f.contacts, msg)
	return nil
}

// CreateSubscriber mirrors the mongo repo's upsert: an existing email is left
// untouched.
func (f *fakeLeadsRepo) CreateSubscriber(ctx context.Context, sub *models.Subscriber) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.subscribers {
		if existing.Email == sub.Email {
			return nil
		}
	}
	sub.ID = "sub-1"
	f.subscribers = append(f.subscribers, sub)
	return nil
}

func (f *fakeLeadsRepo) ListContactMessages(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	for _, m := range f.contacts {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeLeadsRepo) ListSubscribers(ctx context.Context, limit int64) ([]models.Subscriber, error) {
	var out []models.Subscriber
	for _, s := range f.subscribers {
		out = append(out, *s)
	}
	return out, nil
}

type fakeNotifier struct {
	contactCalls int
	err          error
}

func (f *fakeNotifier) SendBookingRequest(ctx context.Context, payload models.BookingPayload) error {
	return f.err
}

func (f *fakeNotifier) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	return f.err
}

func (f *fakeNotifier) SendContactNotification(ctx context.Context, msg models.ContactMessage) error {
	f.contactCalls++
	return f.err
}

func newTestLeadsService() (*DefaultLeadsService, *fakeLeadsRepo, *fakeNotifier) {
	repo := &fakeLeadsRepo{}
	notifier := &fakeNotifier{}
	svc := &DefaultLeadsService{Repo: repo, Notifier: notifier, Logger: zap.NewNop()}
	return svc, repo, notifier
}

func TestSubmitContactMessage(t *testing.T) {
	svc, repo, notifier := newTestLeadsService()

	msg, err := svc.SubmitContactMessage(context.Background(), models.ContactMessage{
		Name:    "  Ada Lovelace  ",
		Email:   " ada@example.com ",
		Message: " We need help with our platform. ",
	})
	require.NoError(t, err)
	assert.Equal(t, "cm-1", msg.ID)
	assert.Equal(t, "Ada Lovelace", msg.Name)
	assert.Equal(t, "ada@example.com", msg.Email)

	require.Len(t, repo.contacts, 1)
	assert.Equal(t, 1, notifier.contactCalls)
}

func TestSubmitContactMessageValidation(t *testing.T) {
	svc, repo, _ := newTestLeadsService()
	ctx := context.Background()

	cases := []models.ContactMessage{
		{Email: "a@b.co", Message: "hi"},
		{Name: "A", Email: "not-an-email", Message: "hi"},
		{Name: "A", Email: "a@b.co"},
	}
	for _, msg := range cases {
		_, err := svc.SubmitContactMessage(ctx, msg)
		assert.Error(t, err)
	}
	assert.Empty(t, repo.contacts)
}

func TestSubmitContactMessageSurvivesNotifierFailure(t *testing.T) {
	svc, repo, notifier := newTestLeadsService()
	notifier.err = errors.New("smtp down")

	msg, err := svc.SubmitContactMessage(context.Background(), models.ContactMessage{
		Name: "Ada", Email: "ada@example.com", Message: "hi",
	})
	require.NoError(t, err, "the lead is kept even when forwarding fails")
	assert.Equal(t, "cm-1", msg.ID)
	assert.Len(t, repo.contacts, 1)
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	svc, repo, _ := newTestLeadsService()

	sub, err := svc.Subscribe(context.Background(), "  Ada@Example.COM ", "/blog")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sub.Email)
	assert.Equal(t, "/blog", sub.Source)
	assert.Len(t, repo.subscribers, 1)
}

func TestSubscribeTwiceDoesNotDuplicate(t *testing.T) {
	svc, repo, _ := newTestLeadsService()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "ada@example.com", "/blog")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, "ADA@example.com", "/pricing")
	require.NoError(t, err)

	assert.Len(t, repo.subscribers, 1)
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	svc, repo, _ := newTestLeadsService()

	_, err := svc.Subscribe(context.Background(), "nope", "")
	assert.Error(t, err)
	assert.Empty(t, repo.subscribers)
}
