package request_models

// WebhookPayload is the provider notification as delivered to the intake
// endpoint. WebhookID is the provider's idempotency key for this delivery.
type WebhookPayload struct {
	PaymentReference      string `json:"payment_reference" binding:"required"`
	ProviderTransactionID string `json:"provider_transaction_id" binding:"required"`
	Status                string `json:"status" binding:"required,oneof=SUCCESS FAILED"`
	Timestamp             string `json:"timestamp" binding:"required"`
	WebhookID             string `json:"webhook_id" binding:"required"`
}
