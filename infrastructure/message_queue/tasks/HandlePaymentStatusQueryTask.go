package queue_tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	payment_usecases "safiri.io/application/usecases/payment"
	"safiri.io/infrastructure/logger"
	mq_types "safiri.io/infrastructure/message_queue/types"
)

var HandlePaymentStatusQueryName mq_types.Queues = "payment_status_query"

type PaymentStatusQueryPayload struct {
	CheckoutRequestID string
	mq_types.BasePayload
}

// Scheduled at the end of the expected callback window for every initiated
// payment. A callback that already resolved the record makes this a cheap
// no-op; otherwise the gateway is queried directly. Returning an error while
// the push is still pending leans on asynq's bounded retry for the backoff.
func HandlePaymentStatusQueryTask(ctx context.Context, t *asynq.Task) error {
	var payload PaymentStatusQueryPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling status query queue payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	transaction, err := payment_usecases.Instance().ResolveStatus(ctx, payload.CheckoutRequestID)
	if err != nil {
		if errors.Is(err, payment_usecases.ErrUnknownCheckout) {
			logger.Error("status query task references an unknown transaction", logger.LoggerOptions{
				Key:  "checkoutRequestID",
				Data: payload.CheckoutRequestID,
			})
			return asynq.SkipRetry
		}
		return err
	}
	if !transaction.Status.Terminal() {
		return fmt.Errorf("payment %s still awaiting resolution", payload.CheckoutRequestID)
	}
	return nil
}
