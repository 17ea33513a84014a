package payment_usecases

import "testing"

func TestSplitFare(t *testing.T) {
	tests := []struct {
		name           string
		amount         int64
		rate           float64
		wantCommission int64
		wantNet        int64
		wantErr        bool
	}{
		{
			name:           "ten percent",
			amount:         1000,
			rate:           0.10,
			wantCommission: 100,
			wantNet:        900,
		},
		{
			name:           "rounds half up",
			amount:         105,
			rate:           0.10,
			wantCommission: 11,
			wantNet:        94,
		},
		{
			name:           "zero rate",
			amount:         1000,
			rate:           0,
			wantCommission: 0,
			wantNet:        1000,
		},
		{
			name:           "full rate",
			amount:         1000,
			rate:           1,
			wantCommission: 1000,
			wantNet:        0,
		},
		{
			name:           "zero amount",
			amount:         0,
			rate:           0.15,
			wantCommission: 0,
			wantNet:        0,
		},
		{
			name:    "negative amount",
			amount:  -1,
			rate:    0.10,
			wantErr: true,
		},
		{
			name:    "negative rate",
			amount:  1000,
			rate:    -0.10,
			wantErr: true,
		},
		{
			name:    "rate above one",
			amount:  1000,
			rate:    1.01,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := SplitFare(tt.amount, tt.rate)

			if tt.wantErr {
				if err == nil {
					t.Error("SplitFare() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitFare() unexpected error = %v", err)
			}
			if split.Commission != tt.wantCommission {
				t.Errorf("Commission = %d, want %d", split.Commission, tt.wantCommission)
			}
			if split.NetAmount != tt.wantNet {
				t.Errorf("NetAmount = %d, want %d", split.NetAmount, tt.wantNet)
			}
		})
	}
}

// The two parts must always reassemble to the original amount, whatever the
// rounding did.
func TestSplitFareConservation(t *testing.T) {
	rates := []float64{0.01, 0.025, 0.1, 0.15, 0.333, 0.5, 0.875}
	for amount := int64(0); amount <= 5000; amount += 7 {
		for _, rate := range rates {
			split, err := SplitFare(amount, rate)
			if err != nil {
				t.Fatalf("SplitFare(%d, %f) unexpected error = %v", amount, rate, err)
			}
			if split.Commission+split.NetAmount != amount {
				t.Fatalf("SplitFare(%d, %f) parts sum to %d, want %d", amount, rate, split.Commission+split.NetAmount, amount)
			}
			if split.Commission < 0 || split.NetAmount < 0 {
				t.Fatalf("SplitFare(%d, %f) produced a negative part: %+v", amount, rate, split)
			}
		}
	}
}
