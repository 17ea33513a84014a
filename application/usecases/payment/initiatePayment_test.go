package payment_usecases

import (
	"context"
	"errors"
	"testing"

	"safiri.io/application/controller/dto"
	"safiri.io/entities"
)

func TestInitiatePayment(t *testing.T) {
	gateway := &fakeGateway{}
	service, store := newTestService(gateway)

	initiated, err := service.InitiatePayment(context.Background(), &dto.InitiatePaymentDTO{
		Phone:            "0712345678",
		Amount:           150,
		AccountReference: "SAF-2024",
		Description:      "Fare payment",
	})
	if err != nil {
		t.Fatalf("InitiatePayment() unexpected error = %v", err)
	}

	if initiated.Transaction.Status != entities.PaymentInitiated {
		t.Errorf("Status = %s, want INITIATED", initiated.Transaction.Status)
	}
	if initiated.Transaction.Phone != "254712345678" {
		t.Errorf("Phone = %q, want the gateway-normalized form", initiated.Transaction.Phone)
	}
	if initiated.CustomerMessage == "" {
		t.Error("CustomerMessage is empty, want the gateway acknowledgment text")
	}

	// The record must be durable before the caller hears about it.
	stored, err := store.FindByCheckoutRequestID(context.Background(), initiated.Transaction.CheckoutRequestID)
	if err != nil {
		t.Fatalf("FindByCheckoutRequestID() unexpected error = %v", err)
	}
	if stored == nil {
		t.Fatal("initiated transaction was not persisted")
	}
	if stored.Amount != 150 || stored.AccountReference != "SAF-2024" {
		t.Errorf("stored amount/reference = %d/%q, want 150/SAF-2024", stored.Amount, stored.AccountReference)
	}
}

func TestInitiatePaymentGatewayFailure(t *testing.T) {
	pushErr := errors.New("gateway down")
	gateway := &fakeGateway{pushErr: pushErr}
	service, store := newTestService(gateway)

	_, err := service.InitiatePayment(context.Background(), &dto.InitiatePaymentDTO{
		Phone:            "0712345678",
		Amount:           150,
		AccountReference: "SAF-2024",
		Description:      "Fare payment",
	})
	if !errors.Is(err, pushErr) {
		t.Errorf("InitiatePayment() error = %v, want the gateway error passed through", err)
	}

	// A rejected push leaves no record behind.
	store.mu.Lock()
	recorded := len(store.records)
	store.mu.Unlock()
	if recorded != 0 {
		t.Errorf("store holds %d records after a failed push, want 0", recorded)
	}
}
