package availability

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "bookcall/database/repository/booking"
	"bookcall/models"
)

// WeeklyTemplate defines which slot labels are offered on a given weekday.
// One document per weekday; days without a document offer nothing.
type WeeklyTemplate struct {
	Weekday int      `bson:"weekday" json:"weekday"` // time.Weekday, Sunday = 0
	Labels  []string `bson:"labels" json:"labels"`
}

// MongoSource derives availability from the weekly template collection minus
// the labels already booked for that date.
type MongoSource struct {
	Templates *mongo.Collection
	Bookings  bookingRepo.BookingRepository
}

// NewMongoSource constructs the production availability source.
func NewMongoSource(templates *mongo.Collection, bookings bookingRepo.BookingRepository) *MongoSource {
	return &MongoSource{Templates: templates, Bookings: bookings}
}

func (s *MongoSource) GetAvailableSlots(ctx context.Context, date string) ([]string, error) {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tmpl WeeklyTemplate
	err = s.Templates.FindOne(ctx, bson.M{"weekday": int(day.Weekday())}).Decode(&tmpl)
	if err == mongo.ErrNoDocuments {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly template: %w", err)
	}

	booked, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b.TimeLabel] = true
	}

	open := make([]string, 0, len(tmpl.Labels))
	for _, label := range tmpl.Labels {
		if !taken[label] {
			open = append(open, label)
		}
	}
	return open, nil
}
