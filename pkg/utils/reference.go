package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Human-facing identifiers. References are generated once at creation and
// never reused; uniqueness is still enforced by the storage layer.

func NewPaymentReference() string {
	return "PAY-" + shortID()
}

func NewProviderReference() string {
	return "PRV-" + shortID()
}

func NewWebhookID() string {
	return "WH-" + uuid.New().String()
}

func shortID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
