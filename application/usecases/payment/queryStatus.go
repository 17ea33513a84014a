package payment_usecases

import (
	"context"

	"safiri.io/entities"
)

// ResolveStatus answers from the store when the record is already terminal;
// only a still-INITIATED record triggers a gateway query. A pending query
// outcome leaves the record untouched.
func (service *Service) ResolveStatus(ctx context.Context, checkoutRequestID string) (*entities.PaymentTransaction, error) {
	transaction, err := service.Store.FindByCheckoutRequestID(ctx, checkoutRequestID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrUnknownCheckout
	}
	if transaction.Status.Terminal() {
		return transaction, nil
	}

	status, err := service.Gateway.QueryPushStatus(ctx, checkoutRequestID)
	if err != nil {
		return nil, err
	}
	if status.Pending {
		return transaction, nil
	}

	// The query endpoint reports the outcome code but carries no settlement
	// metadata; only the callback does.
	return service.applyResolution(ctx, transaction, status.ResultCode, status.ResultDescription, nil)
}
