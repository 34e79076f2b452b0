package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"hermes/pkg/utils"
)

type InitiateRequest struct {
	Reference   string  `json:"reference"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	PhoneNumber string  `json:"phone_number"`
	CallbackURL string  `json:"callback_url"`
}

type InitiateResponse struct {
	Accepted          bool   `json:"success"`
	ProviderReference string `json:"provider_reference"`
	Message           string `json:"message"`
}

// WebhookPayload is what the provider posts back to the callback URL once
// it has settled the payment. WebhookID is fresh per delivery attempt from
// our side's point of view, but the provider reuses it when it redelivers.
type WebhookPayload struct {
	PaymentReference      string `json:"payment_reference"`
	ProviderTransactionID string `json:"provider_transaction_id"`
	Status                string `json:"status"`
	Timestamp             string `json:"timestamp"`
	WebhookID             string `json:"webhook_id"`
}

// Provider is the outbound integration point. Acceptance is synchronous and
// distinct from settlement, which arrives later via webhook. A real
// processor integration replaces DummyProvider behind this interface.
type Provider interface {
	InitiatePayment(ctx context.Context, req InitiateRequest) (*InitiateResponse, error)
}

type Config struct {
	CallbackURL string
	SuccessRate float64       // probability the settlement reports SUCCESS
	MinDelay    time.Duration // webhook delivery window lower bound
	MaxDelay    time.Duration // webhook delivery window upper bound

	// Deliver overrides webhook delivery; defaults to an HTTP POST of the
	// payload to CallbackURL.
	Deliver func(payload WebhookPayload)
}

// DummyProvider simulates an asynchronous, unreliable payment processor:
// it always accepts, then after a randomized delay delivers exactly one
// settlement webhook whose outcome follows the configured success rate.
type DummyProvider struct {
	cfg Config
}

func NewDummyProvider(cfg Config) *DummyProvider {
	if cfg.SuccessRate <= 0 {
		cfg.SuccessRate = 0.8
	}
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = 2 * time.Second
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = 5 * time.Second
	}
	p := &DummyProvider{cfg: cfg}
	if p.cfg.Deliver == nil {
		p.cfg.Deliver = p.httpDeliver
	}
	return p
}

func (p *DummyProvider) InitiatePayment(ctx context.Context, req InitiateRequest) (*InitiateResponse, error) {

	providerReference := utils.NewProviderReference()

	p.scheduleWebhookCallback(req.Reference, providerReference)

	return &InitiateResponse{
		Accepted:          true,
		ProviderReference: providerReference,
		Message:           "Payment initiated successfully",
	}, nil
}

func (p *DummyProvider) scheduleWebhookCallback(paymentReference, providerReference string) {
	delay := p.cfg.MinDelay
	if window := p.cfg.MaxDelay - p.cfg.MinDelay; window > 0 {
		delay += time.Duration(rand.Int63n(int64(window)))
	}
	success := rand.Float64() < p.cfg.SuccessRate

	go func() {
		time.Sleep(delay)

		status := "FAILED"
		if success {
			status = "SUCCESS"
		}

		p.cfg.Deliver(WebhookPayload{
			PaymentReference:      paymentReference,
			ProviderTransactionID: providerReference,
			Status:                status,
			Timestamp:             time.Now().UTC().Format(time.RFC3339),
			WebhookID:             utils.NewWebhookID(),
		})
	}()
}

func (p *DummyProvider) httpDeliver(payload WebhookPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("webhook delivery: marshal failed: %v", err)
		return
	}

	resp, err := http.Post(p.cfg.CallbackURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("webhook delivery failed for %s: %v", payload.PaymentReference, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("webhook delivery for %s returned %d", payload.PaymentReference, resp.StatusCode)
	}
}
