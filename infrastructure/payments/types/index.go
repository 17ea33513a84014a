package payment_types

import "context"

// PushPaymentProcessor is the gateway-facing surface the payment flow needs:
// fire a push prompt at a customer's phone and poll for its outcome. The
// asynchronous half (the callback) arrives over HTTP and is handled by the
// webhook controller, not this interface.
type PushPaymentProcessor interface {
	InitiatePush(ctx context.Context, phone string, amount uint32, accountReference string, description string) (*PushPaymentResponse, error)
	QueryPushStatus(ctx context.Context, checkoutRequestID string) (*PushStatusResponse, error)
}

// PushPaymentResponse is the gateway's acknowledgment of an initiation.
// NormalizedPhone is the canonical MSISDN the prompt was actually sent to.
type PushPaymentResponse struct {
	CheckoutRequestID string
	MerchantRequestID string
	CustomerMessage   string
	NormalizedPhone   string
}

// PushStatusResponse is the outcome of an active status query. Pending means
// the customer has not acted on the prompt yet; ResultCode is only
// meaningful when Pending is false.
type PushStatusResponse struct {
	Pending           bool
	ResultCode        int
	ResultDescription string
}
