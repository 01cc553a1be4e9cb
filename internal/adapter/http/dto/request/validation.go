package request

import (
	"regexp"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern   = regexp.MustCompile(`^[\d\s\-+()]+$`)
	zipCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the storefront tags (phone, zipcode, strongpassword)
// to gin's binding validator. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		for tag, fn := range map[string]validator.Func{
			"phone":          validatePhone,
			"zipcode":        validateZipCode,
			"strongpassword": validateStrongPassword,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateZipCode(fl validator.FieldLevel) bool {
	return zipCodePattern.MatchString(fl.Field().String())
}

// validateStrongPassword wants at least 8 characters with an upper case
// letter, a lower case letter and a digit.
func validateStrongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len([]rune(s)) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
