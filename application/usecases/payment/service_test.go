package payment_usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"safiri.io/entities"
	"safiri.io/infrastructure/logger"
	payment_types "safiri.io/infrastructure/payments/types"
)

func TestMain(m *testing.M) {
	logger.InitializeLogger()
	os.Exit(m.Run())
}

// memoryStore is an in-memory TransactionStore with the same first-writer-wins
// Resolve semantics as the mongo implementation.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]*entities.PaymentTransaction
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]*entities.PaymentTransaction{}}
}

func (store *memoryStore) Create(ctx context.Context, transaction entities.PaymentTransaction) (*entities.PaymentTransaction, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, exists := store.records[transaction.CheckoutRequestID]; exists {
		return nil, errors.New("duplicate checkout request id")
	}
	parsed := transaction.ParseModel().(*entities.PaymentTransaction)
	store.records[parsed.CheckoutRequestID] = parsed
	copied := *parsed
	return &copied, nil
}

func (store *memoryStore) FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entities.PaymentTransaction, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	record, exists := store.records[checkoutRequestID]
	if !exists {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (store *memoryStore) Resolve(ctx context.Context, checkoutRequestID string, resolution Resolution) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	record, exists := store.records[checkoutRequestID]
	if !exists || record.Status != entities.PaymentInitiated {
		return false, nil
	}
	record.Status = resolution.Status
	record.ResultCode = &resolution.ResultCode
	record.ResultDescription = &resolution.ResultDescription
	record.ReceiptNumber = resolution.ReceiptNumber
	record.SettledAmount = resolution.SettledAmount
	record.SettledPhone = resolution.SettledPhone
	record.SettledAt = resolution.SettledAt
	record.ResolvedAt = &resolution.ResolvedAt
	record.UpdatedAt = time.Now()
	return true, nil
}

// fakeGateway records calls and serves scripted responses.
type fakeGateway struct {
	mu         sync.Mutex
	pushCalls  int
	queryCalls int

	pushResponse  *payment_types.PushPaymentResponse
	pushErr       error
	queryResponse *payment_types.PushStatusResponse
	queryErr      error
}

func (gateway *fakeGateway) InitiatePush(ctx context.Context, phone string, amount uint32, accountReference string, description string) (*payment_types.PushPaymentResponse, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	gateway.pushCalls++
	if gateway.pushErr != nil {
		return nil, gateway.pushErr
	}
	if gateway.pushResponse != nil {
		return gateway.pushResponse, nil
	}
	return &payment_types.PushPaymentResponse{
		CheckoutRequestID: fmt.Sprintf("ws_CO_%d", gateway.pushCalls),
		MerchantRequestID: fmt.Sprintf("29115-%d", gateway.pushCalls),
		CustomerMessage:   "Success. Request accepted for processing",
		NormalizedPhone:   "254712345678",
	}, nil
}

func (gateway *fakeGateway) QueryPushStatus(ctx context.Context, checkoutRequestID string) (*payment_types.PushStatusResponse, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	gateway.queryCalls++
	if gateway.queryErr != nil {
		return nil, gateway.queryErr
	}
	if gateway.queryResponse != nil {
		return gateway.queryResponse, nil
	}
	return &payment_types.PushStatusResponse{Pending: true}, nil
}

func (gateway *fakeGateway) queries() int {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return gateway.queryCalls
}

// memoryLock mirrors the redis lease contract for a single process.
type memoryLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemoryLock() *memoryLock {
	return &memoryLock{held: map[string]bool{}}
}

func (lock *memoryLock) AcquireLock(key string, ttl time.Duration) (func(), bool) {
	lock.mu.Lock()
	defer lock.mu.Unlock()
	if lock.held[key] {
		return nil, false
	}
	lock.held[key] = true
	release := func() {
		lock.mu.Lock()
		defer lock.mu.Unlock()
		delete(lock.held, key)
	}
	return release, true
}

func newTestService(gateway *fakeGateway) (*Service, *memoryStore) {
	store := newMemoryStore()
	return &Service{
		Store:   store,
		Gateway: gateway,
		Locks:   newMemoryLock(),
		LockTTL: time.Second,
	}, store
}
