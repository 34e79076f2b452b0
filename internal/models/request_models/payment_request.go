package request_models

type CreatePaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"required,oneof=UGX USD"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=MOBILE_MONEY"`
	CustomerPhone string  `json:"customer_phone" binding:"required,e164"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=INITIATED PENDING SUCCESS FAILED"`
	Reason string `json:"reason"`
}
