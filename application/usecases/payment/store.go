package payment_usecases

import (
	"context"
	"time"

	"safiri.io/entities"
)

// TransactionStore is the durable record of payment attempts. The mongo
// implementation lives in application/repository; tests use an in-memory
// fake.
type TransactionStore interface {
	Create(ctx context.Context, transaction entities.PaymentTransaction) (*entities.PaymentTransaction, error)
	FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entities.PaymentTransaction, error)
	// Resolve applies a terminal transition conditioned on the record still
	// being INITIATED. Returns false when the record was already terminal
	// (or missing), which makes duplicate resolutions a no-op.
	Resolve(ctx context.Context, checkoutRequestID string, resolution Resolution) (bool, error)
}

type Resolution struct {
	Status            entities.PaymentStatus
	ResultCode        int
	ResultDescription string
	ReceiptNumber     *string
	SettledAmount     *uint32
	SettledPhone      *string
	SettledAt         *time.Time
	ResolvedAt        time.Time
}

// ResolutionLock serializes resolvers of one checkout request id. The redis
// cache repository satisfies this.
type ResolutionLock interface {
	AcquireLock(key string, ttl time.Duration) (func(), bool)
}
