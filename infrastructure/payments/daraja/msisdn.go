package daraja

import (
	"errors"
	"strings"
)

var ErrMalformedPhone = errors.New("malformed phone number")

// MSISDNScheme describes one country's mobile numbering plan. The gateway
// only accepts canonical international MSISDNs (country code + subscriber
// number, digits only), but callers submit phones in whatever local style
// their users typed.
type MSISDNScheme struct {
	CountryCode      string
	MobilePrefixes   []string
	SubscriberLength int
}

// KenyanMSISDNScheme matches Safaricom's numbering plan.
func KenyanMSISDNScheme() MSISDNScheme {
	return MSISDNScheme{
		CountryCode:      "254",
		MobilePrefixes:   []string{"7", "1"},
		SubscriberLength: 9,
	}
}

// Normalize converts a free-form phone string to canonical form. It fails
// closed: anything it cannot recognize is rejected rather than guessed at.
func (scheme MSISDNScheme) Normalize(raw string) (string, error) {
	digits := stripNonDigits(raw)
	if digits == "" {
		return "", ErrMalformedPhone
	}

	var canonical string
	switch {
	case strings.HasPrefix(digits, "0"):
		// local format, e.g. 0712345678
		canonical = scheme.CountryCode + digits[1:]
	case scheme.hasMobilePrefix(digits) && len(digits) == scheme.SubscriberLength:
		// bare subscriber number, e.g. 712345678
		canonical = scheme.CountryCode + digits
	case strings.HasPrefix(digits, scheme.CountryCode):
		canonical = digits
	default:
		return "", ErrMalformedPhone
	}

	if !scheme.isCanonical(canonical) {
		return "", ErrMalformedPhone
	}
	return canonical, nil
}

func (scheme MSISDNScheme) isCanonical(msisdn string) bool {
	if len(msisdn) != len(scheme.CountryCode)+scheme.SubscriberLength {
		return false
	}
	if !strings.HasPrefix(msisdn, scheme.CountryCode) {
		return false
	}
	return scheme.hasMobilePrefix(msisdn[len(scheme.CountryCode):])
}

func (scheme MSISDNScheme) hasMobilePrefix(subscriber string) bool {
	for _, prefix := range scheme.MobilePrefixes {
		if strings.HasPrefix(subscriber, prefix) {
			return true
		}
	}
	return false
}

func stripNonDigits(raw string) string {
	var builder strings.Builder
	for _, char := range raw {
		if char >= '0' && char <= '9' {
			builder.WriteRune(char)
		}
	}
	return builder.String()
}
