package models

import "time"

// ContactMessage is a lead captured from the site's contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"` // page path the signup came from
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
