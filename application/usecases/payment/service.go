package payment_usecases

import (
	"errors"
	"time"

	payment_types "safiri.io/infrastructure/payments/types"
)

var (
	ErrInvalidCallback = errors.New("malformed callback payload")
	ErrUnknownCheckout = errors.New("no transaction matches the checkout request id")
)

// Service owns the payment flow: initiation, callback resolution and the
// status-query fallback. All dependencies are injected so tests can swap in
// fakes for the store, the gateway and the lock.
type Service struct {
	Store   TransactionStore
	Gateway payment_types.PushPaymentProcessor
	Locks   ResolutionLock

	// How long a resolver lease is held while applying a terminal
	// transition.
	LockTTL time.Duration
}

var service *Service

// Initialise wires the singleton used by controllers and queue tasks. Called
// once from startUp.
func Initialise(instance *Service) {
	if instance.LockTTL == 0 {
		instance.LockTTL = 10 * time.Second
	}
	service = instance
}

func Instance() *Service {
	return service
}
