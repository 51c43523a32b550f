package validator

import (
	"encoding/json"
	"fmt"
	"glamp/shared/constant"
	"glamp/shared/failure"
	"io"
	"time"

	val "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate *val.Validate

const hyphenatedUUIDLength = 36

// IsHyphenatedUUID reports whether value is a UUID in its canonical
// 8-4-4-4-12 form. Bare hex, braced and urn forms are rejected.
func IsHyphenatedUUID(value string) bool {
	if len(value) != hyphenatedUUIDLength {
		return false
	}

	_, err := uuid.Parse(value)

	return err == nil
}

func registerHyphenatedUUIDValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return IsHyphenatedUUID(value)
}

func registerDateOnlyValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateOnlyFormat, value)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("hyphenated_uuid", registerHyphenatedUUIDValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dateonly", registerDateOnlyValidation)
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

// Decode only reads the JSON body into data. Services that validate their
// own input use it so the rules live in one place.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
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
