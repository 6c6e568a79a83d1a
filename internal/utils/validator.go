package utils

import (
	"regexp"
	"unicode/utf8"

	"techsell-web/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var (
	phoneSubmitRegex = regexp.MustCompile(`^\d{10}$`)
	phoneInputRegex  = regexp.MustCompile(`^\d{0,10}$`)
)

func InitValidator() {
	Validate = validator.New()
	_ = Validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneSubmitRegex.MatchString(fl.Field().String())
	})
}

// PhoneInputAllowed reports whether a partially typed phone value is still
// acceptable: digits only, at most ten of them. Submission additionally
// requires exactly ten (the phone10 rule).
func PhoneInputAllowed(value string) bool {
	return phoneInputRegex.MatchString(value)
}

// PhoneSubmitAllowed reports whether a phone value may be submitted.
func PhoneSubmitAllowed(value string) bool {
	return phoneSubmitRegex.MatchString(value)
}

// WantedItemAllowed reports whether a wanted-item description fits the
// 50 character limit.
func WantedItemAllowed(value string) bool {
	return utf8.RuneCountInString(value) <= domain.WantedItemDescriptionMax
}
