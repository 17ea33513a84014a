package validator

import (
	"testing"

	"safiri.io/application/controller/dto"
)

func TestValidateInitiatePaymentDTO(t *testing.T) {
	tests := []struct {
		name    string
		payload dto.InitiatePaymentDTO
		wantErr bool
	}{
		{
			name: "valid payload",
			payload: dto.InitiatePaymentDTO{
				Phone:            "0712345678",
				Amount:           150,
				AccountReference: "SAF-2024",
				Description:      "Fare payment",
			},
		},
		{
			name: "international phone format",
			payload: dto.InitiatePaymentDTO{
				Phone:            "+254 712 345 678",
				Amount:           150,
				AccountReference: "SAF-2024",
				Description:      "Fare payment",
			},
		},
		{
			name: "missing phone",
			payload: dto.InitiatePaymentDTO{
				Amount:           150,
				AccountReference: "SAF-2024",
				Description:      "Fare payment",
			},
			wantErr: true,
		},
		{
			name: "phone with letters",
			payload: dto.InitiatePaymentDTO{
				Phone:            "07abc45678",
				Amount:           150,
				AccountReference: "SAF-2024",
				Description:      "Fare payment",
			},
			wantErr: true,
		},
		{
			name: "zero amount",
			payload: dto.InitiatePaymentDTO{
				Phone:            "0712345678",
				AccountReference: "SAF-2024",
				Description:      "Fare payment",
			},
			wantErr: true,
		},
		{
			name: "account reference too long",
			payload: dto.InitiatePaymentDTO{
				Phone:            "0712345678",
				Amount:           150,
				AccountReference: "THIRTEEN-CHRS",
				Description:      "Fare payment",
			},
			wantErr: true,
		},
		{
			name: "description too long",
			payload: dto.InitiatePaymentDTO{
				Phone:            "0712345678",
				Amount:           150,
				AccountReference: "SAF-2024",
				Description:      "fourteen chars",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatorInstance.ValidateStruct(tt.payload)

			if tt.wantErr && errs == nil {
				t.Error("ValidateStruct() expected errors but got none")
			}
			if !tt.wantErr && errs != nil {
				t.Errorf("ValidateStruct() unexpected errors = %v", *errs)
			}
		})
	}
}
