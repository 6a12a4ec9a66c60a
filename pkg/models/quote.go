package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"everafterpress.ca/stationery/api/pkg/money"
)

const (
	QuoteStatusSaved   = "saved"
	QuoteStatusOrdered = "ordered"
)

// Quote is an immutable priced snapshot of a Configuration. TotalPrice is
// frozen at save time and never recomputed; the only permitted mutation
// after creation is the saved -> ordered status transition.
type Quote struct {
	ID             bson.ObjectID     `json:"id" bson:"_id,omitempty"`
	QuoteNumber    string            `json:"quote_number" bson:"quote_number"`
	UserID         string            `json:"user_id" bson:"user_id"`
	Status         string            `json:"status" bson:"status"`
	TotalPrice     money.Cents       `json:"total_price" bson:"total_price"`
	Configuration  Configuration     `json:"configuration" bson:"configuration"`
	DisplayDetails map[string]string `json:"display_details" bson:"display_details"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" bson:"updated_at"`
}

// CanBeOrdered reports whether the quote is still eligible for the
// saved -> ordered transition.
func (q *Quote) CanBeOrdered() bool {
	return q.Status == QuoteStatusSaved
}

// CanBeDeleted reports whether the quote may be removed. Ordered quotes
// are retained as the record backing the deposit line.
func (q *Quote) CanBeDeleted() bool {
	return q.Status == QuoteStatusSaved
}

// SetTimestamps sets created_at and updated_at timestamps.
func (q *Quote) SetTimestamps() {
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now
}

// QuoteNotification is the payload handed to the email collaborator when
// a quote is saved.
type QuoteNotification struct {
	InvitationType InvitationType `json:"invitation_type"`
	Quantity       int            `json:"quantity"`
	Material       string         `json:"material"`
	Shape          string         `json:"shape"`
	EstimatedTotal string         `json:"estimated_total"`
}

// SaveQuoteRequest is the inbound shape for persisting a configuration.
type SaveQuoteRequest struct {
	UserID        string        `json:"user_id" binding:"required"`
	Configuration Configuration `json:"configuration"`
}

func GenerateQuoteNumber() string {
	// Format: QTE-YYYYMMDD-HHMMSS-RRRRRR. The random suffix keeps saves
	// landing in the same second from colliding on the unique index.
	suffix := make([]byte, 3)
	rand.Read(suffix)
	return fmt.Sprintf("QTE-%s-%s",
		time.Now().Format("20060102-150405"),
		hex.EncodeToString(suffix),
	)
}
