package db_models

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "INITIATED"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSuccess   PaymentStatus = "SUCCESS"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type PaymentCurrency string

const (
	CurrencyUGX PaymentCurrency = "UGX"
	CurrencyUSD PaymentCurrency = "USD"
)

type PaymentMethod string

const (
	MethodMobileMoney PaymentMethod = "MOBILE_MONEY"
)

type StatusTrigger string

const (
	TriggerSystem  StatusTrigger = "SYSTEM"
	TriggerWebhook StatusTrigger = "WEBHOOK"
	TriggerAdmin   StatusTrigger = "ADMIN"
)

// validTransitions is the authority on which status changes are legal.
// SUCCESS and FAILED are terminal.
var validTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusInitiated: {PaymentStatusPending, PaymentStatusFailed},
	PaymentStatusPending:   {PaymentStatusSuccess, PaymentStatusFailed},
	PaymentStatusSuccess:   {},
	PaymentStatusFailed:    {},
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, next := range validTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s PaymentStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

func (s PaymentStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

type Payment struct {
	BaseModel
	Reference string    `gorm:"uniqueIndex;size:32;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`

	Amount        float64         `gorm:"type:decimal(18,2);not null"`
	Currency      PaymentCurrency `gorm:"size:3;not null"`
	PaymentMethod PaymentMethod   `gorm:"size:32;not null"`
	CustomerPhone string
	CustomerEmail string

	Status PaymentStatus `gorm:"size:16;index;not null"`

	// Provider-owned fields, only ever written by the webhook path.
	ProviderReference     *string
	ProviderTransactionID *string
	FailureReason         *string

	StatusLogs []PaymentStatusLog `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
}
