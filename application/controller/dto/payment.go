package dto

import (
	"strconv"
	"time"
)

type InitiatePaymentDTO struct {
	Phone            string `json:"phone" validate:"required,msisdn"`
	Amount           uint32 `json:"amount" validate:"required,min=1"`
	AccountReference string `json:"accountReference" validate:"required,max=12"`
	Description      string `json:"description" validate:"required,max=13"`
}

// STKCallbackDTO mirrors the gateway's webhook body. Correlation ids and the
// result code are pointers so an absent field is distinguishable from a zero
// value when deciding whether a payload is malformed.
type STKCallbackDTO struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID *string              `json:"MerchantRequestID"`
			CheckoutRequestID *string              `json:"CheckoutRequestID"`
			ResultCode        *int                 `json:"ResultCode"`
			ResultDesc        string               `json:"ResultDesc"`
			CallbackMetadata  *STKCallbackMetadata `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type STKCallbackMetadata struct {
	Item []STKCallbackItem `json:"Item"`
}

type STKCallbackItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value"`
}

// The settlement timestamp in callback metadata, e.g. 20240829142530.
const settlementTimeLayout = "20060102150405"

func (metadata *STKCallbackMetadata) lookup(name string) (interface{}, bool) {
	for _, item := range metadata.Item {
		if item.Name == name {
			return item.Value, true
		}
	}
	return nil, false
}

func (metadata *STKCallbackMetadata) ReceiptNumber() *string {
	value, found := metadata.lookup("MpesaReceiptNumber")
	if !found {
		return nil
	}
	receipt, ok := value.(string)
	if !ok || receipt == "" {
		return nil
	}
	return &receipt
}

func (metadata *STKCallbackMetadata) Amount() *uint32 {
	value, found := metadata.lookup("Amount")
	if !found {
		return nil
	}
	amount, ok := value.(float64)
	if !ok || amount < 0 {
		return nil
	}
	parsed := uint32(amount)
	return &parsed
}

// PhoneNumber tolerates both representations the gateway has been seen to
// send: a JSON number and a digit string.
func (metadata *STKCallbackMetadata) PhoneNumber() *string {
	value, found := metadata.lookup("PhoneNumber")
	if !found {
		return nil
	}
	switch phone := value.(type) {
	case string:
		if phone == "" {
			return nil
		}
		return &phone
	case float64:
		formatted := strconv.FormatFloat(phone, 'f', 0, 64)
		return &formatted
	default:
		return nil
	}
}

func (metadata *STKCallbackMetadata) TransactionDate() *time.Time {
	value, found := metadata.lookup("TransactionDate")
	if !found {
		return nil
	}
	var raw string
	switch date := value.(type) {
	case string:
		raw = date
	case float64:
		raw = strconv.FormatFloat(date, 'f', 0, 64)
	default:
		return nil
	}
	parsed, err := time.ParseInLocation(settlementTimeLayout, raw, time.Local)
	if err != nil {
		return nil
	}
	return &parsed
}
