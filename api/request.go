package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

const maxBodyBytes = 1 << 20

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	return v
}

// normalizer is implemented by request payloads that clean themselves up before validation.
type normalizer interface {
	normalize()
}

// readBody reads a non-empty request body.
func readBody(r *http.Request, payloadType string) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.NewMalformedPayloadError(payloadType, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errs.NewMalformedPayloadError(payloadType, errors.New("empty request body"))
	}
	return body, nil
}

// decodeBody unmarshals body into dst, normalizes it and validates it.
func decodeBody(body []byte, payloadType string, dst interface{}) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	if n, ok := dst.(normalizer); ok {
		n.normalize()
	}
	return validateStruct(dst)
}

// decodeJSON reads a JSON request body into dst and validates it.
func decodeJSON(r *http.Request, payloadType string, dst interface{}) error {
	body, err := readBody(r, payloadType)
	if err != nil {
		return err
	}
	return decodeBody(body, payloadType, dst)
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errs.NewBadRequestError(err.Error())
	}

	violations := make([]errs.FieldViolation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, errs.FieldViolation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return errs.NewValidationError(violations)
}

// uuidParam parses the named URL parameter as a UUID
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewMissingRequiredFieldError(name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewInvalidFieldError(name, "must be a UUID")
	}
	return id, nil
}

// boolQuery parses an optional boolean query parameter
func boolQuery(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1":
		v := true
		return &v, nil
	case "false", "0":
		v := false
		return &v, nil
	}
	return nil, errs.NewInvalidFieldError(name, "must be true or false")
}
