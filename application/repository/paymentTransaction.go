package repository

import (
	"context"
	"sync"

	payment_usecases "safiri.io/application/usecases/payment"
	"safiri.io/entities"
	"safiri.io/infrastructure/database/connection/datastore"
	"safiri.io/infrastructure/database/repository/mongo"
)

var paymentTransactionOnce = sync.Once{}

var paymentTransactionRepository mongo.MongoRepository[entities.PaymentTransaction]

func PaymentTransactionRepo() *mongo.MongoRepository[entities.PaymentTransaction] {
	paymentTransactionOnce.Do(func() {
		paymentTransactionRepository = mongo.MongoRepository[entities.PaymentTransaction]{Model: datastore.PaymentTransactionModel}
	})
	return &paymentTransactionRepository
}

// mongoTransactionStore adapts the generic mongo repository to the payment
// flow's store contract.
type mongoTransactionStore struct{}

func PaymentTransactionStore() payment_usecases.TransactionStore {
	return mongoTransactionStore{}
}

func (store mongoTransactionStore) Create(ctx context.Context, transaction entities.PaymentTransaction) (*entities.PaymentTransaction, error) {
	return PaymentTransactionRepo().CreateOne(ctx, transaction)
}

func (store mongoTransactionStore) FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entities.PaymentTransaction, error) {
	return PaymentTransactionRepo().FindOneByFilter(map[string]interface{}{
		"checkoutRequestID": checkoutRequestID,
	})
}

func (store mongoTransactionStore) Resolve(ctx context.Context, checkoutRequestID string, resolution payment_usecases.Resolution) (bool, error) {
	update := map[string]any{
		"status":            resolution.Status,
		"resultCode":        resolution.ResultCode,
		"resultDescription": resolution.ResultDescription,
		"resolvedAt":        resolution.ResolvedAt,
	}
	if resolution.ReceiptNumber != nil {
		update["receiptNumber"] = resolution.ReceiptNumber
	}
	if resolution.SettledAmount != nil {
		update["settledAmount"] = resolution.SettledAmount
	}
	if resolution.SettledPhone != nil {
		update["settledPhone"] = resolution.SettledPhone
	}
	if resolution.SettledAt != nil {
		update["settledAt"] = resolution.SettledAt
	}
	// Matching on INITIATED makes the terminal transition first-writer-wins;
	// a record that is already terminal simply does not match.
	return PaymentTransactionRepo().UpdatePartialByFilter(map[string]interface{}{
		"checkoutRequestID": checkoutRequestID,
		"status":            entities.PaymentInitiated,
	}, update)
}
