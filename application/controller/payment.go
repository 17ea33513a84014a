package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apperrors "safiri.io/application/appErrors"
	"safiri.io/application/controller/dto"
	"safiri.io/application/interfaces"
	payment_usecases "safiri.io/application/usecases/payment"
	"safiri.io/infrastructure/database/repository/cache"
	"safiri.io/infrastructure/env"
	"safiri.io/infrastructure/logger"
	messagequeue "safiri.io/infrastructure/message_queue"
	queue_tasks "safiri.io/infrastructure/message_queue/tasks"
	mq_types "safiri.io/infrastructure/message_queue/types"
	"safiri.io/infrastructure/payments/daraja"
	server_response "safiri.io/infrastructure/serverResponse"
	"safiri.io/infrastructure/validator"
)

func InitiatePayment(ctx *interfaces.ApplicationContext[dto.InitiatePaymentDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	initiated, err := payment_usecases.Instance().InitiatePayment(context.TODO(), ctx.Body)
	if err != nil {
		if errors.Is(err, daraja.ErrMalformedPhone) || errors.Is(err, daraja.ErrAmountOutOfRange) {
			apperrors.ClientError(ctx.Ctx, err.Error(), nil, nil)
			return
		}
		if errors.Is(err, daraja.ErrAuth) || errors.Is(err, daraja.ErrInitiation) {
			apperrors.ExternalDependencyError(ctx.Ctx, "daraja", "unavailable", err)
			return
		}
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}

	scheduleStatusQueryFallback(initiated.Transaction.CheckoutRequestID)

	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "payment initiated", map[string]any{
		"checkoutRequestID": initiated.Transaction.CheckoutRequestID,
		"merchantRequestID": initiated.Transaction.MerchantRequestID,
		"status":            initiated.Transaction.Status,
		"customerMessage":   initiated.CustomerMessage,
	}, nil, nil)
}

func GetPaymentStatus(ctx *interfaces.ApplicationContext[string]) {
	if ctx.Body == nil || *ctx.Body == "" {
		apperrors.ClientError(ctx.Ctx, "checkout request id is required", nil, nil)
		return
	}

	transaction, err := payment_usecases.Instance().ResolveStatus(context.TODO(), *ctx.Body)
	if err != nil {
		if errors.Is(err, payment_usecases.ErrUnknownCheckout) {
			apperrors.NotFoundError(ctx.Ctx, "no payment matches that checkout request id")
			return
		}
		if errors.Is(err, daraja.ErrAuth) || errors.Is(err, daraja.ErrQuery) {
			apperrors.ExternalDependencyError(ctx.Ctx, "daraja", "unavailable", err)
			return
		}
		apperrors.UnknownError(ctx.Ctx, err)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "payment status", transaction, nil, nil)
}

// ProcessDarajaCallback handles the gateway webhook. The gateway retries any
// non-success response, so anomalies are logged and counted internally while
// the gateway always hears success for a delivery we can attribute.
func ProcessDarajaCallback(ctx *interfaces.ApplicationContext[[]byte]) {
	transaction, err := payment_usecases.Instance().ProcessCallback(context.TODO(), *ctx.Body)
	if err != nil {
		if errors.Is(err, payment_usecases.ErrInvalidCallback) {
			logger.Error("malformed daraja callback", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			}, logger.LoggerOptions{
				Key:  "payload",
				Data: string(*ctx.Body),
			})
			cache.Cache.IncrementEntry("daraja-callback-malformed")
			respondToGateway(ctx.Ctx)
			return
		}
		if errors.Is(err, payment_usecases.ErrUnknownCheckout) {
			cache.Cache.IncrementEntry("daraja-callback-unknown-checkout")
			respondToGateway(ctx.Ctx)
			return
		}
		logger.Error("an error occured while processing daraja callback", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	logger.Info("daraja callback processed", logger.LoggerOptions{
		Key:  "checkoutRequestID",
		Data: transaction.CheckoutRequestID,
	}, logger.LoggerOptions{
		Key:  "status",
		Data: transaction.Status,
	})
	respondToGateway(ctx.Ctx)
}

func respondToGateway(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusOK, "processed successfully", map[string]any{
		"ResultCode": 0,
		"ResultDesc": "Success",
	}, nil, nil)
}

// The fallback poll fires once the gateway's push window has likely lapsed.
// If the callback beat it, the task no-ops against the terminal record.
func scheduleStatusQueryFallback(checkoutRequestID string) {
	payload, err := json.Marshal(queue_tasks.PaymentStatusQueryPayload{
		CheckoutRequestID: checkoutRequestID,
		BasePayload: mq_types.BasePayload{
			RetryInterval: time.Minute,
		},
	})
	if err != nil {
		logger.Error("error marshalling payload for status query queue", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Payload:   payload,
		Name:      queue_tasks.HandlePaymentStatusQueryName,
		Priority:  mq_types.High,
		MaxRetry:  5,
		ProcessIn: env.GetDuration("STATUS_QUERY_DELAY", 2*time.Minute),
	})
}
