package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Only the first failing
// field is reported, matching the one-message-per-response error envelope.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return errors.New(fieldError(ve[0]))
		}
		return err
	}
	return nil
}

// fieldLabels carries the client-facing names used in validation messages.
var fieldLabels = map[string]string{
	"FirstName":   "First name",
	"LastName":    "Last name",
	"Email":       "Email",
	"Password":    "Password",
	"NewPassword": "New Password",
	"PhoneNumber": "Phone Number",
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "email":
		return label + " must be a valid email."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s elements.", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s).", label, fe.Tag())
	}
}
