package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"resto/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// envelope is the request body shape used by every write endpoint: {"data": {...}}.
type envelope[T any] struct {
	Data *T `json:"data"`
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateEnvelope is Validate for bodies wrapped in a "data" member.
// A missing "data" member validates the zero value, so required fields report themselves.
func ValidateEnvelope[T any](r io.Reader, data *T) error {
	if err := DecodeEnvelope(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// DecodeEnvelope unwraps {"data": {...}} into data without validating it.
func DecodeEnvelope[T any](r io.Reader, data *T) error {
	body := envelope[T]{Data: data}

	if err := json.NewDecoder(r).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if body.Data == nil {
		var zero T
		*data = zero
	}

	return nil
}

// Normalizer is implemented by requests that clean their own input, such as
// trimming whitespace. ValidateStruct runs it before the rules are checked.
type Normalizer interface {
	Normalize()
}

func ValidateStruct[T any](data *T) error {
	if n, ok := any(data).(Normalizer); ok {
		n.Normalize()
	}

	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
