package response_models

type StatusLogResponse struct {
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
	Reason      string `json:"reason,omitempty"`
	TriggeredBy string `json:"triggered_by"`
	CreatedAt   int64  `json:"created_at"`
}

type PaymentResponse struct {
	ID                    string              `json:"id"`
	Reference             string              `json:"reference"`
	UserID                string              `json:"user_id"`
	Amount                float64             `json:"amount"`
	Currency              string              `json:"currency"`
	PaymentMethod         string              `json:"payment_method"`
	CustomerPhone         string              `json:"customer_phone"`
	CustomerEmail         string              `json:"customer_email"`
	Status                string              `json:"status"`
	ProviderReference     *string             `json:"provider_reference,omitempty"`
	ProviderTransactionID *string             `json:"provider_transaction_id,omitempty"`
	FailureReason         *string             `json:"failure_reason,omitempty"`
	CreatedAt             int64               `json:"created_at"`
	UpdatedAt             int64               `json:"updated_at"`
	StatusLogs            []StatusLogResponse `json:"status_logs"`
}
