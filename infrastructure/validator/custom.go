package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Cheap shape check only. The daraja package's normalizer is the authority
// on what the gateway accepts; this exists to reject obvious garbage before
// the usecase runs.
var msisdnRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{6,18}$`)

func validateMSISDN(fl validator.FieldLevel) bool {
	return msisdnRegex.MatchString(fl.Field().String())
}
