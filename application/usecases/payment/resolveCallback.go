package payment_usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"safiri.io/application/constants"
	"safiri.io/application/controller/dto"
	"safiri.io/entities"
	"safiri.io/infrastructure/logger"
)

// ProcessCallback interprets the gateway's webhook notification and applies
// the terminal transition it describes. Redelivered callbacks for an
// already-terminal record return the stored outcome without mutating
// anything.
func (service *Service) ProcessCallback(ctx context.Context, rawBody []byte) (*entities.PaymentTransaction, error) {
	var payload dto.STKCallbackDTO
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCallback, err)
	}

	callback := payload.Body.StkCallback
	if callback.CheckoutRequestID == nil || *callback.CheckoutRequestID == "" ||
		callback.MerchantRequestID == nil || *callback.MerchantRequestID == "" ||
		callback.ResultCode == nil {
		return nil, fmt.Errorf("%w: missing correlation ids or result code", ErrInvalidCallback)
	}

	transaction, err := service.Store.FindByCheckoutRequestID(ctx, *callback.CheckoutRequestID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		// Either a replayed stale id or a record that never got persisted.
		// Distinct from a malformed payload; must not create a transaction.
		logger.Warning("callback references an unknown checkout request id", logger.LoggerOptions{
			Key:  "checkoutRequestID",
			Data: *callback.CheckoutRequestID,
		}, logger.LoggerOptions{
			Key:  "merchantRequestID",
			Data: *callback.MerchantRequestID,
		})
		return nil, ErrUnknownCheckout
	}
	if transaction.Status.Terminal() {
		return transaction, nil
	}

	return service.applyResolution(ctx, transaction, *callback.ResultCode, callback.ResultDesc, callback.CallbackMetadata)
}

// applyResolution performs the single INITIATED -> terminal transition. A
// redis lease keeps the callback and status-query paths from interleaving;
// the conditional store update is the final guard either way.
func (service *Service) applyResolution(ctx context.Context, transaction *entities.PaymentTransaction, resultCode int, resultDescription string, metadata *dto.STKCallbackMetadata) (*entities.PaymentTransaction, error) {
	if release, acquired := service.acquireLease(transaction.CheckoutRequestID); acquired {
		defer release()
	}

	resolution := Resolution{
		ResultCode:        resultCode,
		ResultDescription: resultDescription,
		ResolvedAt:        time.Now(),
	}
	if resultCode == constants.RESULT_CODE_SUCCESS {
		resolution.Status = entities.PaymentSucceeded
		if metadata != nil {
			resolution.ReceiptNumber = metadata.ReceiptNumber()
			resolution.SettledAmount = metadata.Amount()
			resolution.SettledPhone = metadata.PhoneNumber()
			resolution.SettledAt = metadata.TransactionDate()
		}
	} else {
		resolution.Status = entities.PaymentFailed
	}

	applied, err := service.Store.Resolve(ctx, transaction.CheckoutRequestID, resolution)
	if err != nil {
		return nil, err
	}
	if !applied {
		// A concurrent resolver won the transition. The stored outcome is
		// authoritative.
		fresh, err := service.Store.FindByCheckoutRequestID(ctx, transaction.CheckoutRequestID)
		if err != nil {
			return nil, err
		}
		if fresh == nil {
			return nil, ErrUnknownCheckout
		}
		return fresh, nil
	}

	logger.Info("payment resolved", logger.LoggerOptions{
		Key:  "checkoutRequestID",
		Data: transaction.CheckoutRequestID,
	}, logger.LoggerOptions{
		Key:  "status",
		Data: resolution.Status,
	}, logger.LoggerOptions{
		Key:  "resultCode",
		Data: resultCode,
	})

	fresh, err := service.Store.FindByCheckoutRequestID(ctx, transaction.CheckoutRequestID)
	if err != nil {
		return nil, err
	}
	return fresh, nil
}

func (service *Service) acquireLease(checkoutRequestID string) (func(), bool) {
	if service.Locks == nil {
		return nil, false
	}
	key := "payment-resolution-" + checkoutRequestID
	for attempt := 0; attempt < 10; attempt++ {
		if release, acquired := service.Locks.AcquireLock(key, service.LockTTL); acquired {
			return release, true
		}
		time.Sleep(100 * time.Millisecond)
	}
	logger.Warning("proceeding without resolution lease", logger.LoggerOptions{
		Key:  "checkoutRequestID",
		Data: checkoutRequestID,
	})
	return nil, false
}
