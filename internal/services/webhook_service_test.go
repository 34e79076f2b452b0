package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hermes/internal/models/db_models"
	"hermes/internal/models/request_models"
	"hermes/internal/repositories"
	"hermes/internal/testutil"
	"hermes/pkg/utils"
)

type webhookFixture struct {
	webhookSvc  WebhookServiceInterface
	paymentSvc  PaymentServiceInterface
	paymentRepo repositories.PaymentRepositoryInterface
	webhookRepo repositories.WebhookEventRepositoryInterface
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	paymentRepo := repositories.NewPaymentRepository(db)
	webhookRepo := repositories.NewWebhookEventRepository(db)
	paymentSvc := NewPaymentService(paymentRepo, acceptingProvider(), testCallbackURL)
	return &webhookFixture{
		webhookSvc:  NewWebhookService(webhookRepo, paymentRepo, paymentSvc),
		paymentSvc:  paymentSvc,
		paymentRepo: paymentRepo,
		webhookRepo: webhookRepo,
	}
}

// createPendingPayment runs the creation flow so the payment sits in
// PENDING with its INITIATED->PENDING log entry, as it would when a real
// settlement webhook arrives.
func (f *webhookFixture) createPendingPayment(t *testing.T) string {
	t.Helper()
	payment, err := f.paymentSvc.CreatePayment(context.Background(), uuid.New(), createRequest())
	require.NoError(t, err)
	require.Equal(t, "PENDING", payment.Status)
	return payment.Reference
}

func webhookPayload(reference, status, webhookID string) request_models.WebhookPayload {
	return request_models.WebhookPayload{
		PaymentReference:      reference,
		ProviderTransactionID: "TXN-0001",
		Status:                status,
		Timestamp:             time.Now().UTC().Format(time.RFC3339),
		WebhookID:             webhookID,
	}
}

func TestProcessWebhookSuccess(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()
	reference := f.createPendingPayment(t)

	err := f.webhookSvc.ProcessWebhook(ctx, webhookPayload(reference, "SUCCESS", "WH-1"))
	require.NoError(t, err)

	payment, err := f.paymentSvc.GetPaymentByReference(ctx, reference)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", payment.Status)
	require.NotNil(t, payment.ProviderTransactionID)
	assert.Equal(t, "TXN-0001", *payment.ProviderTransactionID)
	assert.Nil(t, payment.FailureReason)

	require.Len(t, payment.StatusLogs, 2)
	last := payment.StatusLogs[1]
	assert.Equal(t, "PENDING", last.FromStatus)
	assert.Equal(t, "SUCCESS", last.ToStatus)
	assert.Equal(t, "WEBHOOK", last.TriggeredBy)
	assert.Equal(t, "Provider webhook: SUCCESS", last.Reason)

	event, err := f.webhookRepo.FindByWebhookID(ctx, "WH-1")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.True(t, event.Processed)
}

func TestProcessWebhookRedeliveryIsNoOp(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()
	reference := f.createPendingPayment(t)
	payload := webhookPayload(reference, "SUCCESS", "WH-1")

	require.NoError(t, f.webhookSvc.ProcessWebhook(ctx, payload))

	// Same idempotency key again: acknowledged without any new effect.
	require.NoError(t, f.webhookSvc.ProcessWebhook(ctx, payload))

	payment, err := f.paymentSvc.GetPaymentByReference(ctx, reference)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", payment.Status)
	assert.Len(t, payment.StatusLogs, 2)
}

func TestProcessWebhookInFlightRejected(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()
	reference := f.createPendingPayment(t)
	payload := webhookPayload(reference, "SUCCESS", "WH-1")

	// A prior delivery claimed the key but never finished.
	require.NoError(t, f.webhookRepo.Create(ctx, &db_models.WebhookEvent{
		WebhookID:        payload.WebhookID,
		PaymentReference: reference,
		Processed:        false,
	}))

	err := f.webhookSvc.ProcessWebhook(ctx, payload)
	assert.ErrorIs(t, err, utils.ErrWebhookInFlight)

	payment, err := f.paymentSvc.GetPaymentByReference(ctx, reference)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", payment.Status)
	assert.Len(t, payment.StatusLogs, 1)
}

func TestProcessWebhookUnknownPaymentLeavesRetryable(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	err := f.webhookSvc.ProcessWebhook(ctx, webhookPayload("PAY-UNKNOWN1", "SUCCESS", "WH-1"))
	assert.ErrorIs(t, err, utils.ErrPaymentNotFound)

	event, err := f.webhookRepo.FindByWebhookID(ctx, "WH-1")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.False(t, event.Processed)
}

func TestProcessWebhookFailureOutcome(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()
	reference := f.createPendingPayment(t)

	err := f.webhookSvc.ProcessWebhook(ctx, webhookPayload(reference, "FAILED", "WH-1"))
	require.NoError(t, err)

	payment, err := f.paymentSvc.GetPaymentByReference(ctx, reference)
	require.NoError(t, err)
	assert.Equal(t, "FAILED", payment.Status)
	require.NotNil(t, payment.FailureReason)
	assert.Equal(t, "Payment failed at provider", *payment.FailureReason)

	require.Len(t, payment.StatusLogs, 2)
	assert.Equal(t, "Provider webhook: FAILED", payment.StatusLogs[1].Reason)
}

func TestProcessWebhookTerminalPaymentRejected(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()
	reference := f.createPendingPayment(t)

	require.NoError(t, f.webhookSvc.ProcessWebhook(ctx, webhookPayload(reference, "SUCCESS", "WH-1")))

	// A contradictory notification under a fresh key cannot move a
	// settled payment; the intake record stays retryable.
	err := f.webhookSvc.ProcessWebhook(ctx, webhookPayload(reference, "FAILED", "WH-2"))
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	payment, err := f.paymentSvc.GetPaymentByReference(ctx, reference)
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", payment.Status)
	assert.Len(t, payment.StatusLogs, 2)

	event, err := f.webhookRepo.FindByWebhookID(ctx, "WH-2")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.False(t, event.Processed)
}
