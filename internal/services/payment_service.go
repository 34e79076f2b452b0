package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"hermes/internal/models/db_models"
	"hermes/internal/models/request_models"
	"hermes/internal/models/response_models"
	"hermes/internal/repositories"
	"hermes/pkg/provider"
	"hermes/pkg/utils"
)

type PaymentServiceInterface interface {
	CreatePayment(ctx context.Context, userID uuid.UUID, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error)
	GetPaymentByReference(ctx context.Context, reference string) (*response_models.PaymentResponse, error)
	UpdatePaymentStatus(ctx context.Context, reference string, request request_models.UpdatePaymentStatusRequest) (*response_models.PaymentResponse, error)

	// TransitionStatus validates the requested change against the
	// transition table and applies it atomically with its audit entry.
	// It is the single write path for payment status.
	TransitionStatus(ctx context.Context, payment *db_models.Payment, target db_models.PaymentStatus, trigger db_models.StatusTrigger, reason string) error
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepositoryInterface
	provider    provider.Provider
	callbackURL string
}

func NewPaymentService(paymentRepo repositories.PaymentRepositoryInterface, prov provider.Provider, callbackURL string) PaymentServiceInterface {
	return &PaymentService{
		paymentRepo: paymentRepo,
		provider:    prov,
		callbackURL: callbackURL,
	}
}

func (s *PaymentService) CreatePayment(ctx context.Context, userID uuid.UUID, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error) {

	payment := &db_models.Payment{
		Reference:     utils.NewPaymentReference(),
		UserID:        userID,
		Amount:        request.Amount,
		Currency:      db_models.PaymentCurrency(request.Currency),
		PaymentMethod: db_models.PaymentMethod(request.PaymentMethod),
		CustomerPhone: request.CustomerPhone,
		CustomerEmail: request.CustomerEmail,
		Status:        db_models.PaymentStatusInitiated,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	providerResponse, err := s.provider.InitiatePayment(ctx, provider.InitiateRequest{
		Reference:   payment.Reference,
		Amount:      payment.Amount,
		Currency:    string(payment.Currency),
		PhoneNumber: payment.CustomerPhone,
		CallbackURL: s.callbackURL,
	})

	if err != nil || !providerResponse.Accepted {
		if err != nil {
			log.Printf("provider initiation failed for %s: %v", payment.Reference, err)
		}
		if terr := s.TransitionStatus(ctx, payment, db_models.PaymentStatusFailed, db_models.TriggerSystem, "Provider rejected payment"); terr != nil {
			return nil, terr
		}
	} else {
		payment.ProviderReference = &providerResponse.ProviderReference
		if uerr := s.paymentRepo.UpdateProviderReference(ctx, payment); uerr != nil {
			return nil, utils.ErrDatabaseError
		}
		if terr := s.TransitionStatus(ctx, payment, db_models.PaymentStatusPending, db_models.TriggerSystem, "Payment sent to provider"); terr != nil {
			return nil, terr
		}
	}

	return s.GetPaymentByReference(ctx, payment.Reference)
}

func (s *PaymentService) GetPaymentByReference(ctx context.Context, reference string) (*response_models.PaymentResponse, error) {

	payment, err := s.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}

	return toPaymentResponse(payment), nil
}

func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, reference string, request request_models.UpdatePaymentStatusRequest) (*response_models.PaymentResponse, error) {

	payment, err := s.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}

	target := db_models.PaymentStatus(request.Status)
	if !target.IsValid() {
		return nil, utils.ErrValidation
	}

	if err := s.TransitionStatus(ctx, payment, target, db_models.TriggerAdmin, request.Reason); err != nil {
		return nil, err
	}

	return s.GetPaymentByReference(ctx, reference)
}

func (s *PaymentService) TransitionStatus(ctx context.Context, payment *db_models.Payment, target db_models.PaymentStatus, trigger db_models.StatusTrigger, reason string) error {

	if !payment.Status.CanTransitionTo(target) {
		return utils.ErrInvalidTransition
	}

	err := s.paymentRepo.TransitionStatus(ctx, payment, target, trigger, reason)
	if err != nil {
		if errors.Is(err, utils.ErrTransitionConflict) {
			return err
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func toPaymentResponse(payment *db_models.Payment) *response_models.PaymentResponse {

	logs := make([]response_models.StatusLogResponse, 0, len(payment.StatusLogs))
	for _, entry := range payment.StatusLogs {
		logs = append(logs, response_models.StatusLogResponse{
			FromStatus:  string(entry.FromStatus),
			ToStatus:    string(entry.ToStatus),
			Reason:      entry.Reason,
			TriggeredBy: string(entry.TriggeredBy),
			CreatedAt:   entry.CreatedAt,
		})
	}

	return &response_models.PaymentResponse{
		ID:                    payment.ID.String(),
		Reference:             payment.Reference,
		UserID:                payment.UserID.String(),
		Amount:                payment.Amount,
		Currency:              string(payment.Currency),
		PaymentMethod:         string(payment.PaymentMethod),
		CustomerPhone:         payment.CustomerPhone,
		CustomerEmail:         payment.CustomerEmail,
		Status:                string(payment.Status),
		ProviderReference:     payment.ProviderReference,
		ProviderTransactionID: payment.ProviderTransactionID,
		FailureReason:         payment.FailureReason,
		CreatedAt:             payment.CreatedAt,
		UpdatedAt:             payment.UpdatedAt,
		StatusLogs:            logs,
	}
}
