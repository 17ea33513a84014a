package payments

import (
	"os"
	"strings"
	"time"

	"safiri.io/infrastructure/env"
	"safiri.io/infrastructure/payments/daraja"
	payment_types "safiri.io/infrastructure/payments/types"
)

// InitialisePaymentProcessor builds the Daraja client from the environment.
// The configured country scheme drives phone normalization so a different
// market is a config change, not a code change.
func InitialisePaymentProcessor() (payment_types.PushPaymentProcessor, error) {
	scheme := daraja.MSISDNScheme{
		CountryCode:      env.GetString("PHONE_COUNTRY_CODE", "254"),
		MobilePrefixes:   strings.Split(env.GetString("PHONE_MOBILE_PREFIXES", "7,1"), ","),
		SubscriberLength: env.GetInt("PHONE_SUBSCRIBER_LENGTH", 9),
	}

	return daraja.NewDarajaClient(daraja.Config{
		Environment:       env.GetString("DARAJA_ENV", "sandbox"),
		BaseURL:           os.Getenv("DARAJA_BASE_URL"),
		ShortCode:         os.Getenv("DARAJA_SHORT_CODE"),
		Passkey:           os.Getenv("DARAJA_PASSKEY"),
		ConsumerKey:       os.Getenv("DARAJA_CONSUMER_KEY"),
		ConsumerSecret:    os.Getenv("DARAJA_CONSUMER_SECRET"),
		CallbackURL:       env.GetString("CALLBACK_BASE_URL", "") + "/api/public/v1/webhooks/daraja",
		InitiatorName:     os.Getenv("DARAJA_INITIATOR_NAME"),
		InitiatorPassword: os.Getenv("DARAJA_INITIATOR_PASSWORD"),
		CertPath:          os.Getenv("DARAJA_CERT_PATH"),
		MinAmount:         env.GetUInt32("PAYMENT_MIN_AMOUNT", 1),
		MaxAmount:         env.GetUInt32("PAYMENT_MAX_AMOUNT", 250_000),
		Timeout:           env.GetDuration("DARAJA_TIMEOUT", 30*time.Second),
		Phone:             scheme,
	})
}
