package dto

import (
	"encoding/json"
	"testing"
)

func TestSTKCallbackMetadataAccessors(t *testing.T) {
	raw := []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 150.00},
						{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
						{"Name": "TransactionDate", "Value": 20240315143045},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`)

	var payload STKCallbackDTO
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal callback: %v", err)
	}
	metadata := payload.Body.StkCallback.CallbackMetadata
	if metadata == nil {
		t.Fatal("CallbackMetadata is nil")
	}

	if receipt := metadata.ReceiptNumber(); receipt == nil || *receipt != "NLJ7RT61SV" {
		t.Errorf("ReceiptNumber() = %v, want NLJ7RT61SV", receipt)
	}
	if amount := metadata.Amount(); amount == nil || *amount != 150 {
		t.Errorf("Amount() = %v, want 150", amount)
	}
	if phone := metadata.PhoneNumber(); phone == nil || *phone != "254712345678" {
		t.Errorf("PhoneNumber() = %v, want 254712345678", phone)
	}
	date := metadata.TransactionDate()
	if date == nil {
		t.Fatal("TransactionDate() = nil, want parsed time")
	}
	if date.Year() != 2024 || date.Month() != 3 || date.Day() != 15 {
		t.Errorf("TransactionDate() = %v, want 2024-03-15", date)
	}
}

func TestSTKCallbackMetadataStringValues(t *testing.T) {
	// The gateway has been seen sending phone and date as strings too.
	metadata := &STKCallbackMetadata{Item: []STKCallbackItem{
		{Name: "PhoneNumber", Value: "254712345678"},
		{Name: "TransactionDate", Value: "20240315143045"},
	}}

	if phone := metadata.PhoneNumber(); phone == nil || *phone != "254712345678" {
		t.Errorf("PhoneNumber() = %v, want 254712345678", phone)
	}
	if date := metadata.TransactionDate(); date == nil {
		t.Error("TransactionDate() = nil, want parsed time from string value")
	}
}

func TestSTKCallbackMetadataMissingOrBadItems(t *testing.T) {
	metadata := &STKCallbackMetadata{Item: []STKCallbackItem{
		{Name: "MpesaReceiptNumber", Value: 12345},
		{Name: "Amount", Value: "not-a-number"},
		{Name: "TransactionDate", Value: "bogus"},
	}}

	if receipt := metadata.ReceiptNumber(); receipt != nil {
		t.Errorf("ReceiptNumber() = %v, want nil for a non-string value", receipt)
	}
	if amount := metadata.Amount(); amount != nil {
		t.Errorf("Amount() = %v, want nil for a non-numeric value", amount)
	}
	if phone := metadata.PhoneNumber(); phone != nil {
		t.Errorf("PhoneNumber() = %v, want nil when absent", phone)
	}
	if date := metadata.TransactionDate(); date != nil {
		t.Errorf("TransactionDate() = %v, want nil for an unparseable value", date)
	}
}

func TestSTKCallbackAbsentFieldsStayNil(t *testing.T) {
	raw := []byte(`{"Body":{"stkCallback":{"ResultDesc":"whatever"}}}`)

	var payload STKCallbackDTO
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal callback: %v", err)
	}

	callback := payload.Body.StkCallback
	if callback.CheckoutRequestID != nil || callback.MerchantRequestID != nil || callback.ResultCode != nil {
		t.Error("absent correlation fields must unmarshal to nil, not zero values")
	}
}
