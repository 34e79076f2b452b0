package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"hermes/internal/models/db_models"
	"hermes/internal/models/request_models"
	"hermes/internal/repositories"
	"hermes/pkg/utils"
)

// Unrecognized provider statuses map to FAILED rather than being dropped.
var webhookStatusMap = map[string]db_models.PaymentStatus{
	"SUCCESS": db_models.PaymentStatusSuccess,
	"FAILED":  db_models.PaymentStatusFailed,
}

const providerFailureReason = "Payment failed at provider"

type WebhookServiceInterface interface {
	ProcessWebhook(ctx context.Context, payload request_models.WebhookPayload) error
}

type WebhookService struct {
	webhookRepo    repositories.WebhookEventRepositoryInterface
	paymentRepo    repositories.PaymentRepositoryInterface
	paymentService PaymentServiceInterface
}

func NewWebhookService(
	webhookRepo repositories.WebhookEventRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	paymentService PaymentServiceInterface,
) WebhookServiceInterface {
	return &WebhookService{
		webhookRepo:    webhookRepo,
		paymentRepo:    paymentRepo,
		paymentService: paymentService,
	}
}

// ProcessWebhook applies a provider notification at most once.
//
// Deduplication rests on the unique index on webhook_id: the intake record
// is inserted first, and a duplicate-key error means the notification was
// already seen. A processed duplicate is acknowledged as a no-op; an
// unprocessed one is rejected with ErrWebhookInFlight and left to the
// provider's redelivery. On any later failure the record stays unprocessed
// so a redelivery can retry the whole step.
func (s *WebhookService) ProcessWebhook(ctx context.Context, payload request_models.WebhookPayload) error {

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return utils.ErrValidation
	}

	event := &db_models.WebhookEvent{
		WebhookID:        payload.WebhookID,
		PaymentReference: payload.PaymentReference,
		Payload:          rawPayload,
		Processed:        false,
	}

	if err := s.webhookRepo.Create(ctx, event); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrDatabaseError
		}

		existing, ferr := s.webhookRepo.FindByWebhookID(ctx, payload.WebhookID)
		if ferr != nil {
			return utils.ErrDatabaseError
		}
		if existing != nil && existing.Processed {
			// Already fully applied; redelivery is a no-op.
			return nil
		}
		return utils.ErrWebhookInFlight
	}

	payment, err := s.paymentRepo.FindByReference(ctx, payload.PaymentReference)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		log.Printf("webhook %s references unknown payment %s", payload.WebhookID, payload.PaymentReference)
		return utils.ErrPaymentNotFound
	}

	target, ok := webhookStatusMap[payload.Status]
	if !ok {
		target = db_models.PaymentStatusFailed
	}

	payment.ProviderTransactionID = &payload.ProviderTransactionID
	if target == db_models.PaymentStatusFailed {
		reason := providerFailureReason
		payment.FailureReason = &reason
	}
	if err := s.paymentRepo.UpdateProviderResult(ctx, payment); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.paymentService.TransitionStatus(ctx, payment, target, db_models.TriggerWebhook, "Provider webhook: "+payload.Status); err != nil {
		return err
	}

	if err := s.webhookRepo.MarkProcessed(ctx, event); err != nil {
		// The transition committed; the record stays retryable and the
		// next redelivery resolves as a conflict rather than a replay.
		log.Printf("webhook %s processed but bookkeeping failed: %v", payload.WebhookID, err)
		return utils.ErrDatabaseError
	}

	return nil
}
