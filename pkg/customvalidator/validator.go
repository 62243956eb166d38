package customvalidator

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers every custom rule on the given
// validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_shape", isPhoneShaped); err != nil {
		return err
	}
	if err := v.RegisterValidation("page_count", isPageCountText); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

// Shape-only phone check, existence is not verified.
func isPhoneShaped(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	return re.MatchString(fl.Field().String())
}

// numberOfPages arrives as numeric text on several paths; valid means it
// parses to a positive integer.
func isPageCountText(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && n > 0
}
