package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"hermes/internal/models/db_models"
	"hermes/pkg/utils"
)

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, payment *db_models.Payment) error
	FindByReference(ctx context.Context, reference string) (*db_models.Payment, error)
	UpdateProviderReference(ctx context.Context, payment *db_models.Payment) error
	UpdateProviderResult(ctx context.Context, payment *db_models.Payment) error
	TransitionStatus(ctx context.Context, payment *db_models.Payment, target db_models.PaymentStatus, trigger db_models.StatusTrigger, reason string) error
}

func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &PaymentRepository{db: db}
}

type PaymentRepository struct {
	db *gorm.DB
}

func (r *PaymentRepository) Create(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// FindByReference loads the payment with its status logs in commit order.
// Returns (nil, nil) when the reference is unknown.
func (r *PaymentRepository) FindByReference(ctx context.Context, reference string) (*db_models.Payment, error) {

	var payment db_models.Payment
	err := r.db.WithContext(ctx).
		Preload("StatusLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("reference = ?", reference).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) UpdateProviderReference(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).
		Model(payment).
		Update("provider_reference", payment.ProviderReference).Error
}

func (r *PaymentRepository) UpdateProviderResult(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).
		Model(payment).
		Updates(map[string]interface{}{
			"provider_transaction_id": payment.ProviderTransactionID,
			"failure_reason":          payment.FailureReason,
		}).Error
}

// TransitionStatus applies a validated status change atomically: the audit
// entry and the status update commit or roll back together. The update is
// conditional on the status the caller read; zero rows affected means a
// concurrent transition won the race, the transaction rolls back and
// ErrTransitionConflict tells the caller to re-read and retry.
func (r *PaymentRepository) TransitionStatus(
	ctx context.Context,
	payment *db_models.Payment,
	target db_models.PaymentStatus,
	trigger db_models.StatusTrigger,
	reason string,
) error {

	from := payment.Status

	err := r.db.Transaction(func(tx *gorm.DB) error {
		logEntry := db_models.PaymentStatusLog{
			PaymentID:   payment.ID,
			FromStatus:  from,
			ToStatus:    target,
			Reason:      reason,
			TriggeredBy: trigger,
		}
		if err := tx.WithContext(ctx).Create(&logEntry).Error; err != nil {
			return err
		}

		result := tx.WithContext(ctx).
			Model(&db_models.Payment{}).
			Where("id = ? AND status = ?", payment.ID, from).
			Update("status", target)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrTransitionConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	payment.Status = target
	return nil
}
