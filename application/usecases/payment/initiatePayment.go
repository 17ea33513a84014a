package payment_usecases

import (
	"context"
	"fmt"

	"safiri.io/application/controller/dto"
	"safiri.io/entities"
	"safiri.io/infrastructure/logger"
)

type InitiatedPayment struct {
	Transaction     *entities.PaymentTransaction
	CustomerMessage string
}

// InitiatePayment pushes a payment prompt to the customer's phone and
// persists the INITIATED record before control returns to the caller, so a
// callback racing the HTTP response always finds it.
func (service *Service) InitiatePayment(ctx context.Context, payload *dto.InitiatePaymentDTO) (*InitiatedPayment, error) {
	acknowledgment, err := service.Gateway.InitiatePush(ctx, payload.Phone, payload.Amount, payload.AccountReference, payload.Description)
	if err != nil {
		return nil, err
	}

	transaction, err := service.Store.Create(ctx, entities.PaymentTransaction{
		CheckoutRequestID: acknowledgment.CheckoutRequestID,
		MerchantRequestID: acknowledgment.MerchantRequestID,
		Phone:             acknowledgment.NormalizedPhone,
		Amount:            payload.Amount,
		AccountReference:  payload.AccountReference,
		Description:       payload.Description,
		Status:            entities.PaymentInitiated,
	})
	if err != nil {
		// The gateway accepted the push but we could not record it. This is
		// the one state the callback handler cannot recover from on its own,
		// so it must be loud.
		logger.Error("gateway acknowledged a push that could not be persisted", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "checkoutRequestID",
			Data: acknowledgment.CheckoutRequestID,
		})
		return nil, fmt.Errorf("failed to record initiated payment: %w", err)
	}

	logger.Info("payment initiated", logger.LoggerOptions{
		Key:  "checkoutRequestID",
		Data: transaction.CheckoutRequestID,
	}, logger.LoggerOptions{
		Key:  "amount",
		Data: transaction.Amount,
	})
	return &InitiatedPayment{
		Transaction:     transaction,
		CustomerMessage: acknowledgment.CustomerMessage,
	}, nil
}
