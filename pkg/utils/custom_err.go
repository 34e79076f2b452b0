package utils

import "errors"

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTransitionConflict = errors.New("payment status changed concurrently")
	ErrWebhookInFlight    = errors.New("webhook is currently being processed")
	ErrValidation         = errors.New("invalid request")
	ErrDatabaseError      = errors.New("database error")
)
