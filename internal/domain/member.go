package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a persisted signup record. Members are immutable once
// created; there are no update or delete operations.
type Member struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName              string             `bson:"firstName" json:"firstName"`
	LastName               string             `bson:"lastName" json:"lastName"`
	Email                  string             `bson:"email" json:"email"`
	PhoneNumber            string             `bson:"phoneNumber" json:"phoneNumber"`
	AcceptedTerms          bool               `bson:"acceptedTerms" json:"acceptedTerms"`
	NewsletterSubscription bool               `bson:"newsletterSubscription" json:"newsletterSubscription"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewMember is a validated, sanitized member-creation record. The
// repository assigns ID and CreatedAt at insert time; they are never
// client-supplied.
type NewMember struct {
	FirstName              string
	LastName               string
	Email                  string
	PhoneNumber            string
	AcceptedTerms          bool
	NewsletterSubscription bool
}
