// File: database/repository/leads/leads_mongo.go
package leadsRepo

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookcall/database"
	"bookcall/models"
)

type mongoLeadsRepo struct {
	contacts    *mongo.Collection
	subscribers *mongo.Collection
}

// NewMongoLeadsRepo constructs a new MongoDB LeadsRepository.
func NewMongoLeadsRepo() LeadsRepository {
	repo := &mongoLeadsRepo{
		contacts:    database.Collection("contact_messages"),
		subscribers: database.Collection("subscribers"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("leadsRepo: %v", err)
	}
	return repo
}

func (r *mongoLeadsRepo) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	_, err := r.contacts.InsertOne(ctx, msg)
	return err
}

// CreateSubscriber upserts on email so repeated signups stay idempotent.
func (r *mongoLeadsRepo) CreateSubscriber(ctx context.Context, sub *models.Subscriber) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	filter := bson.M{"email": sub.Email}
	update := bson.M{"$setOnInsert": sub}
	_, err := r.subscribers.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoLeadsRepo) ListContactMessages(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	return listLeads[models.ContactMessage](ctx, r.contacts, limit)
}

func (r *mongoLeadsRepo) ListSubscribers(ctx context.Context, limit int64) ([]models.Subscriber, error) {
	return listLeads[models.Subscriber](ctx, r.subscribers, limit)
}

func listLeads[T any](ctx context.Context, coll *mongo.Collection, limit int64) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
