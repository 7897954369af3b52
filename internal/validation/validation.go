// Package validation builds the validator instance shared by every
// handler, so the field rules live in exactly one place.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// specialChars is the set of characters that satisfy the special-character
// requirement of the password policy.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// New returns a validator with the application's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	// Registration never fails for a plain func, ignore the error like
	// validator's own examples do.
	_ = v.RegisterValidation("strongpassword", validStrongPassword)
	return v
}

// validStrongPassword enforces the password policy: 8-16 characters, at
// least one uppercase letter and at least one special character.
func validStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 16 {
		return false
	}

	var hasUpper, hasSpecial bool
	for _, c := range password {
		if unicode.IsUpper(c) {
			hasUpper = true
		}
		if strings.ContainsRune(specialChars, c) {
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}

// FieldErrors flattens validator errors into a field -> message map for
// the JSON error body.
func FieldErrors(err error) map[string]string {
	messages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["request"] = err.Error()
		return messages
	}
	for _, e := range validationErrors {
		switch e.Tag() {
		case "strongpassword":
			messages[e.Field()] = fmt.Sprintf("Field '%s' must be 8-16 characters with an uppercase letter and a special character", e.Field())
		default:
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
