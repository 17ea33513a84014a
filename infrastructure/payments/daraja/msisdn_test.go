package daraja

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	scheme := KenyanMSISDNScheme()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "local format with leading zero",
			raw:  "0712345678",
			want: "254712345678",
		},
		{
			name: "canonical international format",
			raw:  "254712345678",
			want: "254712345678",
		},
		{
			name: "plus prefixed international format",
			raw:  "+254712345678",
			want: "254712345678",
		},
		{
			name: "bare subscriber number",
			raw:  "712345678",
			want: "254712345678",
		},
		{
			name: "formatted with spaces and dashes",
			raw:  "0712 345-678",
			want: "254712345678",
		},
		{
			name: "safaricom 1xx prefix",
			raw:  "0110123456",
			want: "254110123456",
		},
		{
			name:    "too short",
			raw:     "07123",
			wantErr: true,
		},
		{
			name:    "too long",
			raw:     "07123456789",
			wantErr: true,
		},
		{
			name:    "landline prefix",
			raw:     "0201234567",
			wantErr: true,
		},
		{
			name:    "wrong country code",
			raw:     "255712345678",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "no digits at all",
			raw:     "+-() ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheme.Normalize(tt.raw)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Normalize(%q) expected error but got %q", tt.raw, got)
					return
				}
				if !errors.Is(err, ErrMalformedPhone) {
					t.Errorf("Normalize(%q) error = %v, want ErrMalformedPhone", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Normalize(%q) unexpected error = %v", tt.raw, err)
				return
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCustomScheme(t *testing.T) {
	scheme := MSISDNScheme{
		CountryCode:      "255",
		MobilePrefixes:   []string{"6", "7"},
		SubscriberLength: 9,
	}

	got, err := scheme.Normalize("0654321987")
	if err != nil {
		t.Fatalf("Normalize() unexpected error = %v", err)
	}
	if got != "255654321987" {
		t.Errorf("Normalize() = %q, want %q", got, "255654321987")
	}

	if _, err := scheme.Normalize("254712345678"); err == nil {
		t.Error("Normalize() expected a kenyan number to fail under the tanzanian scheme")
	}
}
