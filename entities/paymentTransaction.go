package entities

import (
	"time"

	"safiri.io/application/utils"
)

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentUnknown   PaymentStatus = "UNKNOWN"
)

// INITIATED is the only non-terminal state.
func (status PaymentStatus) Terminal() bool {
	return status == PaymentSucceeded || status == PaymentFailed
}

func (status PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if status != PaymentInitiated {
		return false
	}
	return next == PaymentSucceeded || next == PaymentFailed
}

// PaymentTransaction is the durable record of a single STK push attempt.
// It exists only once the gateway has acknowledged the request with a
// checkout request id, and once terminal it is never mutated again.
type PaymentTransaction struct {
	CheckoutRequestID string        `bson:"checkoutRequestID" json:"checkoutRequestID"`
	MerchantRequestID string        `bson:"merchantRequestID" json:"merchantRequestID"`
	Phone             string        `bson:"phone" json:"phone"`
	Amount            uint32        `bson:"amount" json:"amount"`
	AccountReference  string        `bson:"accountReference" json:"accountReference"`
	Description       string        `bson:"description" json:"description"`
	Status            PaymentStatus `bson:"status" json:"status"`

	ResultCode        *int    `bson:"resultCode" json:"resultCode"`
	ResultDescription *string `bson:"resultDescription" json:"resultDescription"`

	// Settlement metadata. Present if and only if Status is SUCCEEDED.
	ReceiptNumber *string    `bson:"receiptNumber" json:"receiptNumber"`
	SettledAmount *uint32    `bson:"settledAmount" json:"settledAmount"`
	SettledPhone  *string    `bson:"settledPhone" json:"settledPhone"`
	SettledAt     *time.Time `bson:"settledAt" json:"settledAt"`

	ResolvedAt *time.Time `bson:"resolvedAt" json:"resolvedAt"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model PaymentTransaction) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	if model.Status == "" {
		model.Status = PaymentInitiated
	}
	model.UpdatedAt = now
	return &model
}
