package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	Unauthorized = NewUnauthorizedError("authentication required")
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrValidationFailed     = errors.New("validation failed")
)

// Authentication Errors
var (
	ErrMissingToken = errors.New("missing session token")
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")
)

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingRequiredField,
		Details:    fmt.Sprintf("Missing required field: %s", fieldName),
		Field:      fieldName,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
	}
}

// FieldViolation is one failed rule on a request field.
type FieldViolation struct {
	Field string
	Rule  string
	Param string
}

// NewValidationError folds field violations into a single 400. The first violation fills Field.
func NewValidationError(violations []FieldViolation) *ApiErr {
	if len(violations) == 0 {
		return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrValidationFailed}
	}

	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		switch {
		case v.Rule == "required":
			parts = append(parts, fmt.Sprintf("%s is required", v.Field))
		case v.Param != "":
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", v.Field, v.Rule, v.Param))
		default:
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", v.Field, v.Rule))
		}
	}

	sentinel := ErrValidationFailed
	if violations[0].Rule == "required" {
		sentinel = ErrMissingRequiredField
	}

	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        sentinel,
		Details:    strings.Join(parts, "; "),
		Field:      violations[0].Field,
	}
}

// Authentication Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Missing session token",
		Field:      "authorization",
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Invalid session token",
		Field:      "authorization",
		Cause:      cause,
	}
}

func NewTokenExpiredError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrTokenExpired,
		Details:    "Session token has expired",
		Field:      "authorization",
	}
}

func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsTokenExpiredError(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}
