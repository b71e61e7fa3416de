// internal/domain/models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a submission from the public contact form. Lead records are
// append-mostly: after creation only their status changes, and only by
// an administrator.
type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone" json:"phone"`
	Email       string             `bson:"email" json:"email"`
	ServiceType string             `bson:"service_type" json:"serviceType"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"` // new, read, replied

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Quote is a submission from the public quote-request form.
type Quote struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone" json:"phone"`
	Email       string             `bson:"email" json:"email"`
	ServiceType string             `bson:"service_type" json:"serviceType"`
	Description string             `bson:"description" json:"description"`
	Address     string             `bson:"address" json:"address"`
	Status      string             `bson:"status" json:"status"` // new, contacted, quoted, closed

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Contact statuses
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Quote statuses
const (
	QuoteStatusNew       = "new"
	QuoteStatusContacted = "contacted"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusClosed    = "closed"
)

// IsValidContactStatus checks whether s is a member of the contact status enum.
func IsValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

// IsValidQuoteStatus checks whether s is a member of the quote status enum.
func IsValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusQuoted, QuoteStatusClosed:
		return true
	}
	return false
}
