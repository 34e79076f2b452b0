package db_models

import (
	"gorm.io/datatypes"
)

// WebhookEvent is the intake ledger for provider notifications. The unique
// index on WebhookID is what makes ingestion idempotent under at-least-once
// redelivery; Processed only flips to true after the payment transition
// committed, so an unprocessed record is always safe to redeliver.
type WebhookEvent struct {
	BaseModel
	WebhookID        string `gorm:"uniqueIndex;size:64;not null"`
	PaymentReference string `gorm:"index;size:32;not null"`

	// Raw notification as received, kept for reconciliation.
	Payload datatypes.JSON `gorm:"type:jsonb"`

	Processed bool `gorm:"default:false;index"`
}
