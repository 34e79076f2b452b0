package db_models

import (
	"github.com/google/uuid"
)

// PaymentStatusLog is the append-only audit trail of a payment. Entries are
// never updated or deleted; the serial ID preserves commit order so the log
// replays the payment's history exactly.
type PaymentStatusLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	PaymentID uuid.UUID `gorm:"type:uuid;index;not null"`

	FromStatus  PaymentStatus `gorm:"size:16;not null"`
	ToStatus    PaymentStatus `gorm:"size:16;not null"`
	Reason      string
	TriggeredBy StatusTrigger `gorm:"size:16"`

	CreatedAt int64 `gorm:"autoCreateTime"`
}
